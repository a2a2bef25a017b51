// Package webrtc exposes the ICE server configuration clients need before
// signaling begins. The server itself never terminates media; signaling
// payloads pass through the relay as opaque JSON.
package webrtc
