// Package tic drives Pololu Tic stepper motor controllers.
//
// A Device combines the protocol tables with a transport:
//
//	dev := tic.New(transport.NewSerial(ch).WithDeviceNumber(14))
//	err := dev.ExitSafeStart()
//	err = dev.SetTargetPosition(-200)
//	pos, err := dev.Variable(protocol.VarCurrentPosition)
//
// Commands don't return a response. Reads decode the raw bytes according to
// the table entry; entries decoded as raw return []byte.
//
// A Device is not safe for concurrent use, and each Device must own its
// transport channel.
package tic
