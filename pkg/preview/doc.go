// Package preview serves rendered elements over HTTP for local
// development. It loads an element manifest, renders each definition
// with editor preview attributes enabled, and live-reloads connected
// browsers when the manifest file changes.
package preview
