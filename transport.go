package escline

import "io"

// Sender is the minimal abstraction a transport must satisfy to receive a
// streamed document. Any io.Writer — a TCP net.Conn, a USB bulk endpoint,
// a serial port, or a Bluetooth RFCOMM/GATT channel — satisfies it via
// WriterSender. Transport establishment itself is out of scope (spec.md
// §1's "external collaborators"); see DESIGN.md for the specific
// transport-specific libraries considered and rejected.
type Sender interface {
	Send(b []byte) error
}

// WriterSender adapts an io.Writer to Sender.
type WriterSender struct {
	W io.Writer
}

func (s WriterSender) Send(b []byte) error {
	_, err := s.W.Write(b)
	return wrapWriteErr(err, "chunk send")
}
