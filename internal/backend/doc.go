// Package backend implements capture.Executor on top of the local desktop.
//
// Still captures are written as PNG, recordings as MP4 through ffmpeg. Both
// resolve the configured selection type to a rectangle in virtual-screen
// coordinates first (see Resolver), save through a Store and hand the result
// to a Delivery. Router picks the executor for a configuration's mode.
package backend
