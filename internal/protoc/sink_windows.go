//go:build windows

package protoc

const descriptorSink = "NUL"
