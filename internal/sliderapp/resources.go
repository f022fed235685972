package sliderapp

import (
	"fyne.io/fyne/v2"

	"github.com/edward-ap/minislider/images"
)

// Embedded application icons.
var (
	SliderIcon32  fyne.Resource
	SliderIcon128 fyne.Resource

	// AppIcon is the default icon used for the app and window.
	AppIcon fyne.Resource
)

func init() {
	if len(images.Slider32) > 0 {
		SliderIcon32 = fyne.NewStaticResource("slider32.png", images.Slider32)
	}
	if len(images.Slider128) > 0 {
		SliderIcon128 = fyne.NewStaticResource("slider128.png", images.Slider128)
	}

	// 32px suits the taskbar on Windows.
	if SliderIcon32 != nil {
		AppIcon = SliderIcon32
	} else if SliderIcon128 != nil {
		AppIcon = SliderIcon128
	}
}
