package dom

import "strings"

// ID sets the id attribute.
func ID(id string) Attr {
	return Attr{Key: "id", Value: id}
}

// Class sets the class attribute, joining multiple classes with spaces.
// Empty classes are skipped.
func Class(classes ...string) Attr {
	kept := make([]string, 0, len(classes))
	for _, c := range classes {
		if c != "" {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		return Attr{}
	}
	return Attr{Key: "class", Value: strings.Join(kept, " ")}
}

// ClassIf sets the class attribute only when condition is true.
func ClassIf(condition bool, classes ...string) Attr {
	if !condition {
		return Attr{}
	}
	return Class(classes...)
}

// Data sets a data-* attribute.
func Data(key, value string) Attr {
	return Attr{Key: "data-" + key, Value: value}
}

// Set sets an arbitrary attribute. Used for attribute passthrough where
// the key is not known statically.
func Set(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// AttrIf returns the attribute only when condition is true.
func AttrIf(condition bool, a Attr) Attr {
	if !condition {
		return Attr{}
	}
	return a
}

func Href(url string) Attr     { return Attr{Key: "href", Value: url} }
func Src(url string) Attr      { return Attr{Key: "src", Value: url} }
func Alt(text string) Attr     { return Attr{Key: "alt", Value: text} }
func Title(text string) Attr   { return Attr{Key: "title", Value: text} }
func Width(w int) Attr         { return Attr{Key: "width", Value: w} }
func Height(h int) Attr        { return Attr{Key: "height", Value: h} }
func Target(target string) Attr { return Attr{Key: "target", Value: target} }
func Rel(rel string) Attr      { return Attr{Key: "rel", Value: rel} }
func Lang(lang string) Attr    { return Attr{Key: "lang", Value: lang} }
func Datetime(dt string) Attr  { return Attr{Key: "datetime", Value: dt} }
func Loading(mode string) Attr { return Attr{Key: "loading", Value: mode} }
