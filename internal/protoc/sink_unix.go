//go:build !windows

package protoc

const descriptorSink = "/dev/null"
