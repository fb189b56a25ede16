// Package protocol defines a small framed wire format whose body is
// protected by Reed-Solomon parity. A frame survives symbol corruption
// in its body up to the correction capacity of the chosen code, which
// makes it suitable for lossy datagram links.
package protocol
