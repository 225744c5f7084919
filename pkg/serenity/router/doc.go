// Package router builds and delivers navigation requests between screens.
//
// Every destination is declared once in a Registry together with the exact
// parameters it accepts. Requests are validated when they are built, so a
// request that reaches the host always names a known screen and carries
// exactly its declared parameters.
//
// # Basic Usage
//
//	const (
//	    ScreenHome    router.Screen = "Home"
//	    ScreenPlayer  router.Screen = "SoundPlayer"
//	)
//
//	reg, err := router.NewRegistry(
//	    router.Destination{Screen: ScreenHome},
//	    router.Destination{
//	        Screen:       ScreenPlayer,
//	        Params:       []router.ParamSpec{{Name: "sound", Kind: router.KindString}},
//	        Presentation: router.PresentModal,
//	    },
//	)
//
//	stack := router.NewStack()
//	r := router.New(stack)
//
//	r.Route(reg.Navigate(ScreenHome, nil))
//	r.Route(reg.Navigate(ScreenPlayer, router.Params{"sound": "rain"}))
//	r.Route(router.Back())
//
// # Running screens
//
// Screens can be registered with a ScreenFunc. Run mounts the screen on top
// of the stack with the request that put it there, waits for the request its
// flow produces and routes it, until a pop empties the stack. A screen that
// is revisited after a pop is mounted again from its original request, so its
// flow state starts fresh.
//
// # Exactly once
//
// Route accepts each request once. Copies of a request share its consumption
// state, so routing a copy of a delivered request fails with ErrAlreadyRouted.
package router
