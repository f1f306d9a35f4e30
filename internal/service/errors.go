package service

import "fmt"

var (
	ErrCannotStoreLog = fmt.Errorf("cannot store log")

	// ErrAmbiguousWriteAck means the store acknowledged the insert but
	// returned no row. The record may or may not be durable.
	ErrAmbiguousWriteAck = fmt.Errorf("store acknowledged write without payload")
)
