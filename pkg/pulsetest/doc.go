// Package pulsetest provides helpers for testing code built on pulse
// streams. The core helper is Recorder, which subscribes to a stream and
// keeps every update it delivers for later assertions.
package pulsetest
