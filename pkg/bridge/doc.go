// Package bridge exposes the note store as a set of remote-invocable commands.
//
// It is the boundary a GUI shell calls through: each command takes a JSON
// argument object and returns a JSON result, mirroring the shape of the
// front-end invoke API:
//
//	list_notes()                          -> [{"id":1,"content":"...","pinned":false}]
//	add_note({"content": "..."})          -> null
//	delete_note({"id": 1})                -> null
//	toggle_pin({"id": 1})                 -> null
//	reorder_notes({"orderedIds": [3, 1]}) -> null
//	toggle_notifications()                -> true|false
//	get_notifications()                   -> true|false
//
// The notifications commands switch desktop alerts only; "notes_updated"
// frames are sent after every mutation either way.
//
// Mutating commands never report persistence failures to the caller; the
// store logs them and the in-memory change stands. Serve runs the same
// commands over a JSON-lines stream and interleaves "notes_updated" frames.
package bridge
