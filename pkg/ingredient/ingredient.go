package ingredient

import (
	"fmt"
	"time"

	"github.com/stele-cms/stele/pkg/element"
)

// Type names accepted by Build and by manifest definitions.
const (
	TypeText     = "text"
	TypeHeadline = "headline"
	TypeRichtext = "richtext"
	TypePicture  = "picture"
	TypeLink     = "link"
	TypeBoolean  = "boolean"
	TypeDatetime = "datetime"
	TypeHTML     = "html"
)

// Settings carry type-specific construction options from manifest
// definitions (headline level, link target, picture alt, and so on).
type Settings map[string]any

func (s Settings) str(key string) string {
	if v, ok := s[key].(string); ok {
		return v
	}
	return ""
}

func (s Settings) num(key string) int {
	switch v := s[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

// Build constructs an ingredient of the named type bound to role.
// The value's expected shape depends on the type: strings for text,
// headline, richtext, picture (source URL), link and html; bool for
// boolean; time.Time or RFC 3339 string for datetime.
func Build(typ, role string, value any, settings Settings) (element.Ingredient, error) {
	if settings == nil {
		settings = Settings{}
	}

	switch typ {
	case TypeText:
		return NewText(role, stringValue(value)), nil

	case TypeHeadline:
		level := settings.num("level")
		if level == 0 {
			level = 2
		}
		return NewHeadline(role, stringValue(value), level), nil

	case TypeRichtext:
		return NewRichtext(role, stringValue(value)), nil

	case TypePicture:
		return NewPicture(role, stringValue(value),
			PictureAlt(settings.str("alt")),
			PictureSize(settings.num("width"), settings.num("height")),
		), nil

	case TypeLink:
		return NewLink(role, stringValue(value), settings.str("label"),
			LinkTarget(settings.str("target")),
			LinkRel(settings.str("rel")),
		), nil

	case TypeBoolean:
		b, _ := value.(bool)
		return NewBoolean(role, b,
			BooleanLabels(settings.str("true_label"), settings.str("false_label")),
		), nil

	case TypeDatetime:
		ts, err := timeValue(value)
		if err != nil {
			return nil, fmt.Errorf("ingredient %s: %w", role, err)
		}
		return NewDatetime(role, ts, DatetimeFormat(settings.str("format"))), nil

	case TypeHTML:
		return NewHTML(role, stringValue(value)), nil

	default:
		return nil, fmt.Errorf("ingredient %s: unknown type %q", role, typ)
	}
}

func stringValue(value any) string {
	if value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", value)
}

func timeValue(value any) (time.Time, error) {
	switch v := value.(type) {
	case nil:
		return time.Time{}, nil
	case time.Time:
		return v, nil
	case string:
		ts, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return time.Time{}, fmt.Errorf("parse datetime %q: %w", v, err)
		}
		return ts, nil
	default:
		return time.Time{}, fmt.Errorf("unsupported datetime value %T", value)
	}
}
