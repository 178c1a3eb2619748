package actionport

import "sort"

// Schema is the authoritative registry of tags for one direction of a
// protocol. Tags are claimed once, at startup, through Define, Define2, and
// Signal; the schema is configuration and must not grow after the
// communicating pair is wired up.
//
// Declaring the same tag twice is a programming error and panics at
// definition time, before any message flows.
type Schema struct {
	tags map[string]struct{}
}

// NewSchema creates an empty schema.
func NewSchema() *Schema {
	return &Schema{tags: make(map[string]struct{})}
}

// Has reports whether tag has been declared in this schema.
func (s *Schema) Has(tag string) bool {
	_, ok := s.tags[tag]
	return ok
}

// Tags returns the declared tags in sorted order.
func (s *Schema) Tags() []string {
	tags := make([]string, 0, len(s.tags))
	for tag := range s.tags {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

func (s *Schema) claim(tag string) {
	if tag == "" {
		panic("actionport: empty tag")
	}
	if _, dup := s.tags[tag]; dup {
		panic("actionport: duplicate tag: " + tag)
	}
	s.tags[tag] = struct{}{}
}

// Ref identifies a declared tag whose actions carry payloads of type P.
// Every creator implements Ref for its payload type. Handler registration
// (Handle, HandleEvent, HandleWire) takes a Ref rather than a bare tag
// string so the compiler checks the consumer's parameter type against the
// schema declaration: registering a func(string) against a tag declared
// with an int payload does not compile.
type Ref[P any] interface {
	// Tag returns the declared tag.
	Tag() string

	zero() P
}

// Creator constructs actions for a single tag from a one-argument payload
// transform. The returned action carries the transform's result as its
// payload.
//
// Tags whose payload derives from several values use a struct argument;
// two-argument transforms can use Define2 instead.
type Creator[A, P any] struct {
	tag       string
	transform func(A) P
}

// Define declares tag in s with the given payload transform and returns
// its creator. A nil transform or a duplicate tag panics.
//
// The creator value is the contract shared by both ends of the channel:
// the sending side binds it to a sink, the receiving side registers a
// handler against it.
func Define[A, P any](s *Schema, tag string, transform func(A) P) Creator[A, P] {
	if transform == nil {
		panic("actionport: nil transform for tag: " + tag)
	}
	s.claim(tag)
	return Creator[A, P]{tag: tag, transform: transform}
}

// Tag returns the declared tag.
func (c Creator[A, P]) Tag() string { return c.tag }

func (c Creator[A, P]) zero() (_ P) { return }

// New constructs the action for this tag. The transform runs synchronously;
// if it panics, the panic propagates to the caller.
func (c Creator[A, P]) New(a A) Action {
	return Action{Tag: c.tag, Payload: c.transform(a)}
}

// Creator2 is the two-argument flavor of Creator.
type Creator2[A, B, P any] struct {
	tag       string
	transform func(A, B) P
}

// Define2 declares tag in s with a two-argument payload transform.
func Define2[A, B, P any](s *Schema, tag string, transform func(A, B) P) Creator2[A, B, P] {
	if transform == nil {
		panic("actionport: nil transform for tag: " + tag)
	}
	s.claim(tag)
	return Creator2[A, B, P]{tag: tag, transform: transform}
}

// Tag returns the declared tag.
func (c Creator2[A, B, P]) Tag() string { return c.tag }

func (c Creator2[A, B, P]) zero() (_ P) { return }

// New constructs the action for this tag.
func (c Creator2[A, B, P]) New(a A, b B) Action {
	return Action{Tag: c.tag, Payload: c.transform(a, b)}
}

// SignalCreator constructs payload-free actions: the tag alone is the
// message. Its actions carry a nil payload.
type SignalCreator struct {
	tag string
}

// Signal declares tag in s as a payload-free action.
func Signal(s *Schema, tag string) SignalCreator {
	s.claim(tag)
	return SignalCreator{tag: tag}
}

// Tag returns the declared tag.
func (c SignalCreator) Tag() string { return c.tag }

// New constructs the action for this tag.
func (c SignalCreator) New() Action {
	return Action{Tag: c.tag}
}
