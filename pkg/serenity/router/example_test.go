package router_test

import (
	"fmt"

	"github.com/serenity-wellness/serenity/pkg/serenity/router"
)

// Screen identifiers
const (
	ScreenHome    router.Screen = "Home"
	ScreenLibrary router.Screen = "Library"
	ScreenPlayer  router.Screen = "Player"
)

func exampleRegistry() *router.Registry {
	reg, err := router.NewRegistry(
		router.Destination{Screen: ScreenHome},
		router.Destination{Screen: ScreenLibrary},
		router.Destination{
			Screen:       ScreenPlayer,
			Params:       []router.ParamSpec{{Name: "sound", Kind: router.KindString}},
			Presentation: router.PresentModal,
		},
	)
	if err != nil {
		panic(err)
	}
	return reg
}

// Example demonstrates registering screens and driving them with Run.
func Example() {
	reg := exampleRegistry()
	stack := router.NewStack()
	r := router.New(stack)

	homeVisits := 0

	r.Register(ScreenHome, func(mount router.Request) (router.Request, error) {
		homeVisits++
		if homeVisits == 1 {
			fmt.Println("Home: opening library")
			return reg.Navigate(ScreenLibrary, nil), nil
		}
		fmt.Println("Home: exiting")
		return router.Back(), nil
	})

	r.Register(ScreenPlayer, func(mount router.Request) (router.Request, error) {
		fmt.Printf("Player: %s (modal=%v), closing\n", mount.StringParam("sound"), mount.Presentation() == router.PresentModal)
		return router.Back(), nil
	})

	libraryVisits := 0
	r.Register(ScreenLibrary, func(mount router.Request) (router.Request, error) {
		libraryVisits++
		if libraryVisits == 1 {
			fmt.Println("Library: playing rain")
			return reg.Navigate(ScreenPlayer, router.Params{"sound": "rain"}), nil
		}
		fmt.Println("Library: back")
		return router.Back(), nil
	})

	_ = r.Run(reg.Navigate(ScreenHome, nil))

	// Output:
	// Home: opening library
	// Library: playing rain
	// Player: rain (modal=true), closing
	// Library: back
	// Home: exiting
}

// Example_validation demonstrates that requests are checked against their
// destination when they are built.
func Example_validation() {
	reg := exampleRegistry()

	_, err := reg.Request(ScreenPlayer, nil, router.PresentModal)
	fmt.Println(err)

	_, err = reg.Request(ScreenHome, router.Params{"sound": "rain"}, router.PresentPush)
	fmt.Println(err)

	req, _ := reg.Request(ScreenPlayer, router.Params{"sound": "ocean"}, router.PresentModal)
	fmt.Println(req.Describe())

	// Output:
	// missing declared parameter: Player.sound
	// parameter not declared by destination: Home.sound
	// modal Player{sound=ocean}
}
