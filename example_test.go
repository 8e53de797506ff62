package ogres_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vearutop/ogres"
)

func ExampleEncode() {
	img := ogres.Image{Width: 2, Height: 1, Pix: []byte{10, 20, 30, 40, 50, 60}}
	data, err := ogres.Encode([]ogres.Image{img})
	if err != nil {
		return
	}
	fmt.Printf("% X\n", data)
	// Output: 4F 47 52 45 53 01 00 0C 00 00 00 02 00 01 00 0C 00 0A 14 1E 28 32 3C
}

func ExampleDecode() {
	data, err := ogres.Encode([]ogres.Image{
		{Width: 1, Height: 1, Pix: []byte{1, 2, 3}},
		{Width: 2, Height: 2, Pix: make([]byte, 12)},
	})
	if err != nil {
		return
	}
	images, err := ogres.Decode(data)
	if err != nil {
		return
	}
	for i, img := range images {
		fmt.Printf("layer %d: %dx%d\n", i, img.Width, img.Height)
	}
	// Output:
	// layer 0: 1x1
	// layer 1: 2x2
}

func ExampleEncodeFile() {
	dir, err := os.MkdirTemp("", "ogres")
	if err != nil {
		return
	}
	defer os.RemoveAll(dir)

	img, err := ogres.Normalize(ogres.Source{Width: 1, Height: 1, Format: ogres.FormatRGBA, Pix: []byte{255, 0, 0, 128}})
	if err != nil {
		return
	}
	path := filepath.Join(dir, "red"+ogres.Extension)
	if err := ogres.EncodeFile(path, []ogres.Image{img}); err != nil {
		return
	}

	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()

	h, err := ogres.ReadHeader(f)
	if err != nil {
		return
	}
	fmt.Println(h.LayerCount, h.TotalSize)
	// Output: 1 9
}
