// Package toutdo is the composition root for the toutdo note store.
//
// It connects the core domain (the Store, its ordering policy and the
// notification sink) with the filesystem persistence adapter and the remote
// command boundary, following the Hexagonal Architecture pattern.
//
// The notes live in a single JSON document, notes.json, inside the per-user
// data directory. Every mutation rewrites the whole document atomically and
// pushes a notes_updated event carrying the full ordered list.
//
// Usage:
//
//	app, err := toutdo.New(ctx,
//		toutdo.WithDataDir(dir),
//		toutdo.WithLogger(logger),
//	)
//	if err != nil {
//		return err
//	}
//	defer app.Close()
//
//	note, err := app.Store.Add(ctx, "buy milk")
package toutdo
