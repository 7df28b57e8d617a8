// Package errors provides error handling and operator reporting for the bot.
// Runtime faults are counted, logged and forwarded to an operator webhook
// and the owner's DMs; the process itself keeps running.
package errors

import (
	"bytes"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	json "github.com/goccy/go-json"

	"github.com/AegisWorks/AegisBotGo/pkg/logger"
)

// ErrorHandler manages error counting and reporting
type ErrorHandler struct {
	errorCount    int32
	webhookURL    string
	stopChan      chan struct{}
	stopOnce      sync.Once
	notifyOwner   func(message string)
	maxErrors     int32
	resetInterval time.Duration
	checkInterval time.Duration
	stormReported atomic.Bool
}

// ReportErrorOptions contains options for reporting an error
type ReportErrorOptions struct {
	Error   string
	Message string
}

var (
	handler *ErrorHandler
	once    sync.Once
)

// Init initializes the global error handler
func Init(webhookURL string) *ErrorHandler {
	once.Do(func() {
		handler = NewErrorHandler(webhookURL)
	})
	return handler
}

// Get returns the global error handler instance
func Get() *ErrorHandler {
	return handler
}

// NewErrorHandler creates a new ErrorHandler instance
func NewErrorHandler(webhookURL string) *ErrorHandler {
	h := &ErrorHandler{
		errorCount:    0,
		webhookURL:    webhookURL,
		stopChan:      make(chan struct{}),
		maxErrors:     15,
		resetInterval: 5 * time.Second,
		checkInterval: 1 * time.Second,
	}

	h.start()
	return h
}

// SetOwnerNotifier sets the callback used to DM the owner a diagnostic
// message. Safe to leave unset; reports then go to the webhook only.
func (h *ErrorHandler) SetOwnerNotifier(fn func(message string)) {
	h.notifyOwner = fn
}

// start begins the error monitoring goroutines
func (h *ErrorHandler) start() {
	// Reset goroutine - clears the error count every resetInterval
	go func() {
		ticker := time.NewTicker(h.resetInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				atomic.StoreInt32(&h.errorCount, 0)
				h.stormReported.Store(false)
			case <-h.stopChan:
				return
			}
		}
	}()

	// Watchdog goroutine - reports error storms to the operator.
	// The process is never shut down here; commands keep being served.
	go func() {
		ticker := time.NewTicker(h.checkInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if atomic.LoadInt32(&h.errorCount) > h.maxErrors && h.stormReported.CompareAndSwap(false, true) {
					logger.Warn("Unusually high error rate detected", "AntiCrash")
					h.Report(ReportErrorOptions{
						Error:   "Error Storm",
						Message: fmt.Sprintf("More than %d errors within %s. Check the error log.", h.maxErrors, h.resetInterval),
					})
				}
			case <-h.stopChan:
				return
			}
		}
	}()
}

// Stop stops the error monitoring goroutines
func (h *ErrorHandler) Stop() {
	h.stopOnce.Do(func() { close(h.stopChan) })
}

// IncrementError increments the error count
func (h *ErrorHandler) IncrementError() {
	count := atomic.AddInt32(&h.errorCount, 1)
	logger.Error(fmt.Sprintf("Error count: %d", count), "AntiCrash")
}

// HandlePanic handles a recovered panic
func (h *ErrorHandler) HandlePanic(recovered interface{}) {
	h.IncrementError()
	logger.Error(fmt.Sprintf("Recovered panic: %v", recovered), "AntiCrash")
	h.Report(ReportErrorOptions{
		Error:   "Panic",
		Message: fmt.Sprintf("```%v```", recovered),
	})
}

// Report sends an error report to the operator webhook and the owner's DMs
func (h *ErrorHandler) Report(data ReportErrorOptions) {
	if h.notifyOwner != nil {
		h.notifyOwner(fmt.Sprintf("⚠️ **%s**\n%s", data.Error, data.Message))
	}

	if h.webhookURL == "" {
		return
	}

	embed := map[string]interface{}{
		"author": map[string]string{
			"name": fmt.Sprintf("Error %s", data.Error),
		},
		"description": data.Message,
		"color":       0xFF0000, // Red
		"footer": map[string]string{
			"text": "AegisBot Go",
		},
		"timestamp": time.Now().Format(time.RFC3339),
	}

	payload := map[string]interface{}{
		"embeds": []interface{}{embed},
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to marshal error report: %v", err), "AntiCrash")
		return
	}

	req, err := http.NewRequest("POST", h.webhookURL, bytes.NewBuffer(jsonData))
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to create webhook request: %v", err), "AntiCrash")
		return
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to send error report: %v", err), "AntiCrash")
		return
	}
	defer resp.Body.Close()

	logger.Warn(fmt.Sprintf("Sent error report to webhook, status: %d", resp.StatusCode), "AntiCrash")
}

// RecoverMiddleware returns a recovery function for use in deferred calls
func RecoverMiddleware() func() {
	return func() {
		if r := recover(); r != nil {
			if handler != nil {
				handler.HandlePanic(r)
			} else {
				logger.Error(fmt.Sprintf("Panic recovered (no handler): %v", r), "AntiCrash")
			}
		}
	}
}
