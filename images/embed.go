package images

import _ "embed"

// Slider icons are embedded so the binary runs without the images folder.
//go:embed slider32.png
var Slider32 []byte

//go:embed slider128.png
var Slider128 []byte
