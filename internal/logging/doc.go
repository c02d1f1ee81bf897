// Package logging provides a small Logger interface over logrus, with
// structured fields and an optional rotating file sink, so the rest of the
// module never imports logrus directly.
package logging
