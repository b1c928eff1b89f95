// Package ui is the terminal capture window.
//
// The window shows the capture mode toggle, the selection type tabs and the
// capture button, all rendered from a capture.Controller. Keys reach the
// controller through the KeybindRegistry (single keys and SPC-led sequences)
// or through focus navigation inside CaptureWindow. Triggering hands the
// controller an executor that turns the backend call into a tea.Cmd, so the
// Bubble Tea loop never blocks on a capture.
package ui
