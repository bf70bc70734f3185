// Package persist stores container snapshots on disk. A File binds a
// snapshot type to a path and a Codec; codecs cover gob (Binary), JSON,
// YAML, and an XChaCha20-Poly1305 authenticated-encryption wrapper
// around any of them.
//
//	snap := buf.Snapshot()
//	f := persist.NewFile[ringbuf.Snapshot[int]]("history.bin", persist.Binary{})
//	if err := f.Save(&snap); err != nil { ... }
//
//	enc, err := persist.NewEncrypted(persist.Binary{}, key)
//	if err != nil { ... }
//	secret := persist.NewFile[ringbuf.Snapshot[int]]("history.enc", enc)
package persist
