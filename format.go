package ogres

// Magic is the file signature.
const Magic = "OGRES"

// Extension is the conventional file name extension.
const Extension = ".ogres"

const (
	// HeaderSize is the length of the global header: magic, layer count and total size.
	HeaderSize = len(Magic) + 2 + 4
	// LayerHeaderSize is the length of a layer header: width, height and sz_total.
	LayerHeaderSize = 6
	// BytesPerPixel is the stored pixel size (B, G, R).
	BytesPerPixel = 3
)

const (
	// MaxDimension is the largest width or height a layer can declare.
	MaxDimension = 1<<16 - 1
	// MaxLayerSize is the largest sz_total (header and pixels) a layer can declare.
	MaxLayerSize = 1<<16 - 1
	// MaxLayers is the largest layer count a container can declare.
	MaxLayers = 1<<16 - 1
	// MaxTotalSize is the largest aggregate payload a container can declare.
	MaxTotalSize = 1<<32 - 1
	// MaxLayerPixels is the pixel budget of a single layer.
	MaxLayerPixels = (MaxLayerSize - LayerHeaderSize) / BytesPerPixel
)
