package backend

import (
	"fmt"
	"log"
	"sync"

	atotto "github.com/atotto/clipboard"
	"golang.design/x/clipboard"

	"snapdeck/internal/config"
)

// Delivery hands a saved capture to the user after it is written.
// png is nil for recordings.
type Delivery interface {
	Deliver(path string, png []byte) error
}

// DeliveryFunc adapts a function to Delivery.
type DeliveryFunc func(path string, png []byte) error

func (f DeliveryFunc) Deliver(path string, png []byte) error { return f(path, png) }

// NoDelivery does nothing.
var NoDelivery Delivery = DeliveryFunc(func(string, []byte) error { return nil })

// NewDelivery returns the Delivery for a clipboard mode.
func NewDelivery(mode config.ClipboardMode) Delivery {
	switch mode {
	case config.ClipboardPath:
		return pathClipboard{}
	case config.ClipboardImage:
		return &imageClipboard{}
	default:
		return NoDelivery
	}
}

// pathClipboard copies the saved file path as text.
type pathClipboard struct{}

func (pathClipboard) Deliver(path string, _ []byte) error {
	if atotto.Unsupported {
		return fmt.Errorf("clipboard: no clipboard utility found")
	}
	return atotto.WriteAll(path)
}

// imageClipboard copies PNG bytes; recordings fall back to the path.
type imageClipboard struct {
	once    sync.Once
	initErr error
	mu      sync.Mutex
}

func (c *imageClipboard) Deliver(path string, png []byte) error {
	if png == nil {
		return pathClipboard{}.Deliver(path, nil)
	}
	c.once.Do(func() {
		c.initErr = clipboard.Init()
		if c.initErr != nil {
			log.Printf("backend.imageClipboard: init: %v", c.initErr)
		}
	})
	if c.initErr != nil {
		return fmt.Errorf("clipboard: %w", c.initErr)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	clipboard.Write(clipboard.FmtImage, png)
	return nil
}
