package router

import (
	"errors"
	"testing"

	"github.com/serenity-wellness/serenity/pkg/serenity/fault"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testHome     Screen = "Home"
	testCheckout Screen = "Checkout"
	testMood     Screen = "MoodCheckIn"
)

func testRegistry(t *testing.T) *Registry {
	t.Helper()

	reg, err := NewRegistry(
		Destination{Screen: testHome},
		Destination{
			Screen:       testCheckout,
			Params:       []ParamSpec{{Name: "plan", Kind: KindString}},
			Presentation: PresentModal,
		},
		Destination{
			Screen: testMood,
			Params: []ParamSpec{{Name: "step", Kind: KindInt}},
		},
	)
	require.NoError(t, err)
	return reg
}

type recordingHost struct {
	got []Request
	err error
}

func (h *recordingHost) Navigate(req Request) error {
	h.got = append(h.got, req)
	return h.err
}

type countingObserver struct{ n int }

func (c *countingObserver) Routed(Request) { c.n++ }

func TestRegistry_Request(t *testing.T) {
	reg := testRegistry(t)

	tests := []struct {
		name    string
		screen  Screen
		params  Params
		mode    Presentation
		wantErr error
	}{
		{"no params", testHome, nil, PresentPush, nil},
		{"declared param", testCheckout, Params{"plan": "yearly"}, PresentModal, nil},
		{"int param", testMood, Params{"step": 2}, PresentReplace, nil},
		{"unknown screen", "Nowhere", nil, PresentPush, ErrUnknownScreen},
		{"missing param", testCheckout, Params{}, PresentModal, ErrMissingParam},
		{"extra param", testHome, Params{"plan": "yearly"}, PresentPush, ErrUnexpectedParam},
		{"wrong kind", testMood, Params{"step": "2"}, PresentPush, ErrParamKind},
		{"pop is not a destination mode", testHome, nil, PresentPop, ErrPresentation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := reg.Request(tt.screen, tt.params, tt.mode)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.True(t, req.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.screen, req.Screen())
			assert.Equal(t, tt.mode, req.Presentation())
			assert.NotEmpty(t, req.ID())
			assert.Len(t, req.Params(), len(tt.params))
		})
	}
}

func TestRegistry_NavigateUsesDeclaredPresentation(t *testing.T) {
	reg := testRegistry(t)

	req := reg.Navigate(testCheckout, Params{"plan": "monthly"})
	assert.Equal(t, PresentModal, req.Presentation())
	assert.Equal(t, "monthly", req.StringParam("plan"))

	assert.Equal(t, PresentPush, reg.Navigate(testHome, nil).Presentation())
}

func TestRegistry_MalformedRequestsPanic(t *testing.T) {
	reg := testRegistry(t)

	err := fault.Catch(func() { reg.Navigate(testCheckout, nil) })
	assert.True(t, fault.IsProgrammingError(err))
	assert.ErrorIs(t, err, ErrMissingParam)

	err = fault.Catch(func() { reg.Navigate("Nowhere", nil) })
	assert.ErrorIs(t, err, ErrUnknownScreen)

	err = fault.Catch(func() { reg.MustRequest(testMood, Params{"step": 1, "mood": "great"}, PresentPush) })
	assert.ErrorIs(t, err, ErrUnexpectedParam)
}

func TestNewRegistry_Errors(t *testing.T) {
	_, err := NewRegistry(Destination{Screen: testHome}, Destination{Screen: testHome})
	assert.Error(t, err)

	_, err = NewRegistry(Destination{Screen: testHome, Presentation: PresentPop})
	assert.ErrorIs(t, err, ErrPresentation)

	_, err = NewRegistry(Destination{Screen: ScreenBack})
	assert.Error(t, err)

	_, err = NewRegistry(Destination{Screen: testHome, Params: []ParamSpec{{Name: "a"}, {Name: "a"}}})
	assert.Error(t, err)
}

func TestRequest_ParamsAreCopied(t *testing.T) {
	reg := testRegistry(t)

	params := Params{"plan": "yearly"}
	req := reg.Navigate(testCheckout, params)
	params["plan"] = "monthly"
	assert.Equal(t, "yearly", req.StringParam("plan"))

	out := req.Params()
	out["plan"] = "lifetime"
	assert.Equal(t, "yearly", req.StringParam("plan"))
}

func TestRoute_ExactlyOnce(t *testing.T) {
	reg := testRegistry(t)
	host := &recordingHost{}
	obs := &countingObserver{}
	r := New(host).Observe(obs)

	req := reg.Navigate(testHome, nil)
	copyOfReq := req

	require.NoError(t, r.Route(req))
	assert.True(t, req.Consumed())

	err := r.Route(copyOfReq)
	assert.ErrorIs(t, err, ErrAlreadyRouted)
	assert.Len(t, host.got, 1)
	assert.Equal(t, 1, obs.n)

	assert.ErrorIs(t, r.Route(Request{}), ErrZeroRequest)
}

func TestRoute_HostErrorIsWrapped(t *testing.T) {
	hostErr := errors.New("host busy")
	obs := &countingObserver{}
	r := New(&recordingHost{err: hostErr}).Observe(obs)

	err := r.Route(Back())
	assert.ErrorIs(t, err, hostErr)
	assert.Zero(t, obs.n, "rejected requests are not observed")
}

func TestStack_Navigate(t *testing.T) {
	reg := testRegistry(t)
	s := NewStack()

	require.NoError(t, s.Navigate(reg.Navigate(testHome, nil)))
	require.NoError(t, s.Navigate(reg.Navigate(testCheckout, Params{"plan": "yearly"})))
	assert.Equal(t, []Screen{testHome, testCheckout}, s.Screens())
	assert.True(t, s.Peek().Modal)

	require.NoError(t, s.Navigate(reg.MustRequest(testMood, Params{"step": 0}, PresentReplace)))
	assert.Equal(t, []Screen{testHome, testMood}, s.Screens())
	assert.False(t, s.Peek().Modal)

	require.NoError(t, s.Navigate(Back()))
	require.NoError(t, s.Navigate(Back()))
	assert.True(t, s.IsEmpty())
	assert.ErrorIs(t, s.Navigate(Back()), ErrStackEmpty)
}

func TestStack_Basics(t *testing.T) {
	reg := testRegistry(t)
	s := NewStack()

	assert.Nil(t, s.Pop())
	assert.Nil(t, s.Peek())

	s.Push(reg.Navigate(testHome, nil))
	s.Push(reg.Navigate(testMood, Params{"step": 1}))
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 1, s.Peek().Request.IntParam("step"))

	entry := s.Pop()
	require.NotNil(t, entry)
	assert.Equal(t, testMood, entry.Screen)

	s.Clear()
	assert.True(t, s.IsEmpty())
}

func TestRun_Errors(t *testing.T) {
	reg := testRegistry(t)

	t.Run("host without stack", func(t *testing.T) {
		err := New(&recordingHost{}).Run(reg.Navigate(testHome, nil))
		assert.Error(t, err)
	})

	t.Run("unregistered screen", func(t *testing.T) {
		err := New(NewStack()).Run(reg.Navigate(testHome, nil))
		assert.ErrorContains(t, err, "not registered")
	})

	t.Run("screen error", func(t *testing.T) {
		boom := errors.New("boom")
		r := New(NewStack()).Register(testHome, func(Request) (Request, error) {
			return Request{}, boom
		})
		assert.ErrorIs(t, r.Run(reg.Navigate(testHome, nil)), boom)
	})

	t.Run("screen returning its own mount request", func(t *testing.T) {
		r := New(NewStack()).Register(testHome, func(mount Request) (Request, error) {
			return mount, nil
		})
		assert.ErrorIs(t, r.Run(reg.Navigate(testHome, nil)), ErrAlreadyRouted)
	})
}

func TestDescribe(t *testing.T) {
	reg := testRegistry(t)

	assert.Equal(t, "pop", Back().Describe())
	assert.Equal(t, "push MoodCheckIn{step=3}", reg.Navigate(testMood, Params{"step": 3}).Describe())
}

func TestTarget(t *testing.T) {
	reg := testRegistry(t)

	t.Run("open parameter supplied at build", func(t *testing.T) {
		target := reg.DeclaredTarget(testCheckout, nil, "plan")
		assert.Equal(t, []string{"plan"}, target.Open())
		assert.Equal(t, PresentModal, target.Presentation())

		first := target.Build(Params{"plan": "monthly"})
		second := target.Build(Params{"plan": "lifetime"})
		assert.Equal(t, "monthly", first.StringParam("plan"))
		assert.Equal(t, "lifetime", second.StringParam("plan"))
		assert.NotEqual(t, first.ID(), second.ID())
	})

	t.Run("fixed parameters", func(t *testing.T) {
		target := reg.MustTarget(testMood, Params{"step": 2}, PresentReplace)
		req := target.Build(nil)
		assert.Equal(t, 2, req.IntParam("step"))
		assert.Equal(t, PresentReplace, req.Presentation())
	})

	t.Run("construction errors", func(t *testing.T) {
		_, err := reg.Target(testCheckout, nil, PresentModal)
		assert.ErrorIs(t, err, ErrMissingParam)

		_, err = reg.Target(testHome, nil, PresentPush, "plan")
		assert.ErrorIs(t, err, ErrUnexpectedParam)

		_, err = reg.Target(testCheckout, Params{"plan": "x"}, PresentModal, "plan")
		assert.Error(t, err)

		_, err = reg.Target("Nowhere", nil, PresentPush)
		assert.ErrorIs(t, err, ErrUnknownScreen)
	})

	t.Run("build errors panic", func(t *testing.T) {
		target := reg.DeclaredTarget(testCheckout, nil, "plan")

		err := fault.Catch(func() { target.Build(nil) })
		assert.ErrorIs(t, err, ErrMissingParam)

		err = fault.Catch(func() { target.Build(Params{"plan": 3}) })
		assert.ErrorIs(t, err, ErrParamKind)

		err = fault.Catch(func() { target.Build(Params{"plan": "x", "coupon": "y"}) })
		assert.ErrorIs(t, err, ErrUnexpectedParam)

		err = fault.Catch(func() { Target{}.Build(nil) })
		assert.True(t, fault.IsProgrammingError(err))
	})
}
