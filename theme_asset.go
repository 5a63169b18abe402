package affordance

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Theme assets are YAML documents:
//
//	name: button-tint
//	fallback:
//	  value: "#ffffff"
//	states:
//	  idle:     { value: "#c0c0c0" }
//	  hovered:  { low: "#d0d0d0", value: "#ffffff" }
//	  selected: { value: "#88aaff", enter: click, exit: release }
//
// Color values are hex strings, scalar values are numbers and audio
// payloads (enter, exit) are clip names resolved through a ClipLibrary.

type entryDocument[V any] struct {
	Value *V `yaml:"value" validate:"required_with=Low"`
	Low   *V `yaml:"low"`
	Enter *V `yaml:"enter"`
	Exit  *V `yaml:"exit"`
}

type themeDocument[V any] struct {
	Name     string                      `yaml:"name" validate:"required"`
	Fallback *entryDocument[V]           `yaml:"fallback"`
	States   map[string]entryDocument[V] `yaml:"states" validate:"required,min=1,dive,keys,state,endkeys,required"`
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance returns the shared validator with the "state" tag
// registered.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("state", func(fl validator.FieldLevel) bool {
			_, err := ParseState(fl.Field().String())
			return err == nil
		})
		validateInst = v
	})
	return validateInst
}

// decodeTheme parses and validates a document, converting raw values with
// convert.
func decodeTheme[V, T any](data []byte, convert func(V) (T, error)) (string, *ThemeData[T], error) {
	var doc themeDocument[V]
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return "", nil, fmt.Errorf("%w: parse: %v", ErrThemeAsset, err)
	}
	if err := validatorInstance().Struct(&doc); err != nil {
		return "", nil, fmt.Errorf("%w: %q: %v", ErrThemeAsset, doc.Name, describeValidation(err))
	}

	td := NewThemeData[T]()
	if doc.Fallback != nil {
		e, err := convertEntry(*doc.Fallback, convert)
		if err != nil {
			return "", nil, fmt.Errorf("%w: %q fallback: %v", ErrThemeAsset, doc.Name, err)
		}
		td.SetFallback(e)
	}

	// Sorted for deterministic error reporting.
	names := make([]string, 0, len(doc.States))
	for name := range doc.States {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		s, err := ParseState(name)
		if err != nil {
			return "", nil, fmt.Errorf("%w: %q: %v", ErrThemeAsset, doc.Name, err)
		}
		e, err := convertEntry(doc.States[name], convert)
		if err != nil {
			return "", nil, fmt.Errorf("%w: %q state %s: %v", ErrThemeAsset, doc.Name, s, err)
		}
		_ = td.Set(s, e)
	}
	return doc.Name, td, nil
}

func convertEntry[V, T any](d entryDocument[V], convert func(V) (T, error)) (ThemeEntry[T], error) {
	var e ThemeEntry[T]
	var err error
	if d.Value != nil {
		if e.Value, err = convert(*d.Value); err != nil {
			return e, fmt.Errorf("value: %w", err)
		}
		e.HasValue = true
	}
	if d.Low != nil {
		if e.Low, err = convert(*d.Low); err != nil {
			return e, fmt.Errorf("low: %w", err)
		}
		e.HasRange = true
	}
	if d.Enter != nil {
		if e.Enter, err = convert(*d.Enter); err != nil {
			return e, fmt.Errorf("enter: %w", err)
		}
		e.HasEnter = true
	}
	if d.Exit != nil {
		if e.Exit, err = convert(*d.Exit); err != nil {
			return e, fmt.Errorf("exit: %w", err)
		}
		e.HasExit = true
	}
	return e, nil
}

func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}
	fe := verrs[0]
	return fmt.Sprintf("field %s failed %q", fe.Namespace(), fe.Tag())
}

// DecodeColorTheme parses a color theme document.
func DecodeColorTheme(data []byte) (string, *ThemeData[Color], error) {
	return decodeTheme(data, ParseHexColor)
}

// DecodeFloatTheme parses a scalar theme document.
func DecodeFloatTheme(data []byte) (string, *ThemeData[float64], error) {
	return decodeTheme(data, func(v float64) (float64, error) { return v, nil })
}

// DecodeCueTheme parses a one-shot theme keeping payloads as plain names,
// for tools that report cues instead of playing them.
func DecodeCueTheme(data []byte) (string, *ThemeData[string], error) {
	return decodeTheme(data, func(name string) (string, error) { return name, nil })
}

// DecodeAudioTheme parses an audio theme document, resolving clip names
// through clips.
func DecodeAudioTheme(data []byte, clips ClipLibrary) (string, *ThemeData[*Clip], error) {
	return decodeTheme(data, func(name string) (*Clip, error) {
		c, ok := clips[name]
		if !ok {
			return nil, fmt.Errorf("unknown clip %q", name)
		}
		return c, nil
	})
}

func loadShared[T any](r io.Reader, decode func([]byte) (string, *ThemeData[T], error)) (*SharedTheme[T], error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("affordance: read theme: %w", err)
	}
	name, td, err := decode(data)
	if err != nil {
		return nil, err
	}
	return NewSharedTheme(name, td), nil
}

// LoadColorTheme reads a color theme document into a new SharedTheme.
func LoadColorTheme(r io.Reader) (*SharedTheme[Color], error) {
	return loadShared(r, DecodeColorTheme)
}

// LoadFloatTheme reads a scalar theme document into a new SharedTheme.
func LoadFloatTheme(r io.Reader) (*SharedTheme[float64], error) {
	return loadShared(r, DecodeFloatTheme)
}

// LoadAudioTheme reads an audio theme document into a new SharedTheme.
func LoadAudioTheme(r io.Reader, clips ClipLibrary) (*SharedTheme[*Clip], error) {
	return loadShared(r, func(data []byte) (string, *ThemeData[*Clip], error) {
		return DecodeAudioTheme(data, clips)
	})
}

// ThemeLibrary holds named shared theme assets of one value type. Loading a
// document whose name is already known updates the existing SharedTheme in
// place, so every table referencing it picks up the new data.
type ThemeLibrary[T any] struct {
	decode func([]byte) (string, *ThemeData[T], error)

	mu     sync.RWMutex
	themes map[string]*SharedTheme[T]
}

// NewThemeLibrary creates a library using decode to parse documents.
func NewThemeLibrary[T any](decode func([]byte) (string, *ThemeData[T], error)) *ThemeLibrary[T] {
	return &ThemeLibrary[T]{
		decode: decode,
		themes: make(map[string]*SharedTheme[T]),
	}
}

// NewColorLibrary creates a library of color themes.
func NewColorLibrary() *ThemeLibrary[Color] {
	return NewThemeLibrary(DecodeColorTheme)
}

// NewFloatLibrary creates a library of scalar themes.
func NewFloatLibrary() *ThemeLibrary[float64] {
	return NewThemeLibrary(DecodeFloatTheme)
}

// NewAudioLibrary creates a library of audio themes over clips.
func NewAudioLibrary(clips ClipLibrary) *ThemeLibrary[*Clip] {
	return NewThemeLibrary(func(data []byte) (string, *ThemeData[*Clip], error) {
		return DecodeAudioTheme(data, clips)
	})
}

// Load decodes a document and stores or updates the named theme.
func (l *ThemeLibrary[T]) Load(data []byte) (*SharedTheme[T], error) {
	name, td, err := l.decode(data)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if st, ok := l.themes[name]; ok {
		st.Update(td)
		return st, nil
	}
	st := NewSharedTheme(name, td)
	l.themes[name] = st
	return st, nil
}

// LoadFile reads and loads a document from disk.
func (l *ThemeLibrary[T]) LoadFile(path string) (*SharedTheme[T], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("affordance: read theme %s: %w", path, err)
	}
	return l.Load(data)
}

// Get returns the named theme.
func (l *ThemeLibrary[T]) Get(name string) (*SharedTheme[T], bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	st, ok := l.themes[name]
	return st, ok
}

// Source returns a shared source for name. An unknown name yields a source
// whose lookups are all absent.
func (l *ThemeLibrary[T]) Source(name string) ThemeSource[T] {
	st, _ := l.Get(name)
	return SharedSource(st)
}

// Names returns the loaded theme names, sorted.
func (l *ThemeLibrary[T]) Names() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	names := make([]string, 0, len(l.themes))
	for name := range l.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
