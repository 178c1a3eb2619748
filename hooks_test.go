package actionport

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
)

type WireHooksSuite struct {
	suite.Suite

	schema    *Schema
	increment Creator[int, int]
}

func (s *WireHooksSuite) SetupTest() {
	s.schema = NewSchema()
	s.increment = Define(s.schema, "increment", func(n int) int { return n })
}

func TestWireHooksSuite(t *testing.T) {
	suite.Run(t, new(WireHooksSuite))
}

func (s *WireHooksSuite) TestOnDispatchRunsBeforeConsumer() {
	var order []string

	r := NewWireRouter(WithOnDispatch(func(tag string) {
		order = append(order, "hook:"+tag)
	}))
	HandleWire(r, s.increment, func(int) error {
		order = append(order, "handler")
		return nil
	})

	r.Route([]byte(`{"tag": "increment", "payload": 1}`))

	s.Require().Len(order, 2)
	s.Assert().Equal("hook:increment", order[0])
	s.Assert().Equal("handler", order[1])
}

func (s *WireHooksSuite) TestHooksRunInRegistrationOrder() {
	var order []int

	r := NewWireRouter(
		WithOnDispatch(func(string) { order = append(order, 1) }),
		WithOnDispatch(func(string) { order = append(order, 2) }),
		WithOnDispatch(func(string) { order = append(order, 3) }),
	)
	HandleWire(r, s.increment, func(int) error { return nil })

	r.Route([]byte(`{"tag": "increment", "payload": 1}`))

	s.Assert().Equal([]int{1, 2, 3}, order)
}

func (s *WireHooksSuite) TestOnUnmatchedSeesForeignBytes() {
	var unmatched [][]byte

	r := NewWireRouter(WithOnUnmatched(func(raw []byte) {
		unmatched = append(unmatched, raw)
	}))
	HandleWire(r, s.increment, func(int) error { return nil })

	r.Route([]byte(`{"other": "traffic"}`))
	r.Route([]byte(`{"tag": "unknown"}`))
	r.Route([]byte(`{"tag": "increment", "payload": 1}`))

	s.Require().Len(unmatched, 2)
	s.Assert().Equal(`{"other": "traffic"}`, string(unmatched[0]))
	s.Assert().Equal(`{"tag": "unknown"}`, string(unmatched[1]))
}

func (s *WireHooksSuite) TestOnDecodeErrorFiresForBadPayload() {
	var gotTag string
	var gotErr error

	r := NewWireRouter(WithOnDecodeError(func(tag string, err error) {
		gotTag = tag
		gotErr = err
	}))
	HandleWire(r, s.increment, func(int) error { return nil })

	matched := r.Route([]byte(`{"tag": "increment", "payload": "seven"}`))

	s.Assert().False(matched)
	s.Assert().Equal("increment", gotTag)
	s.Assert().Error(gotErr)
}

func (s *WireHooksSuite) TestOnHandlerErrorFiresAndRouteStillMatches() {
	wantErr := errors.New("handler failed")

	var gotTag string
	var gotErr error

	r := NewWireRouter(WithOnHandlerError(func(tag string, err error) {
		gotTag = tag
		gotErr = err
	}))
	HandleWire(r, s.increment, func(int) error { return wantErr })

	matched := r.Route([]byte(`{"tag": "increment", "payload": 1}`))

	s.Assert().True(matched)
	s.Assert().Equal("increment", gotTag)
	s.Assert().ErrorIs(gotErr, wantErr)
}

func (s *WireHooksSuite) TestNoHooksIsSilent() {
	r := NewWireRouter()
	HandleWire(r, s.increment, func(int) error { return errors.New("ignored") })

	s.Assert().NotPanics(func() {
		r.Route([]byte(`garbage`))
		r.Route([]byte(`{"tag": "increment", "payload": 1}`))
		r.Route([]byte(`{"tag": "increment", "payload": false}`))
	})
}
