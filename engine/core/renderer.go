package core

// Renderer is the backend abstraction the 2D batcher and the text atlas
// draw through. Resources are opaque handles owned by the backend.
type Renderer interface {
	Init() error
	Resize(w, h int)
	Clear(r, g, b, a float32)

	CreatePipeline(PipelineDesc) (Pipeline, error)
	CreateTexture(TextureDesc) (Texture, error)
	CreateMesh(MeshDesc) (Mesh, error)
	// UpdateMesh re-uploads vertex/index data into an existing mesh. The
	// mesh must have been created with at least this capacity.
	UpdateMesh(m Mesh, verts []float32, inds []uint32) error
	Draw(DrawCmd)

	Shutdown()
}

// Opaque backend resource handles. Backends return their own comparable
// types; callers only store and pass them back.
type Pipeline interface{}
type Texture interface{}
type Mesh interface{}

type PipelineDesc struct {
	VertexSource   string
	FragmentSource string
	DepthTest      bool
	Blend          bool
}

type TextureFormat int

const (
	TextureRGBA8 TextureFormat = iota
)

type TextureDesc struct {
	Width, Height int
	Format        TextureFormat
	Pixels        []byte // tightly packed, row-major, top-left origin
	MinFilter     string // "nearest" | "linear"
	MagFilter     string
	WrapU         string // "clamp" | "repeat"
	WrapV         string
}

type AttribType int

const (
	AttribFloat32 AttribType = iota
)

type VertexAttrib struct {
	Location int
	Size     int
	Type     AttribType
	Offset   int // bytes
}

type VertexLayout struct {
	Stride     int // bytes
	Attributes []VertexAttrib
}

type MeshDesc struct {
	Vertices []float32
	Indices  []uint32
	Layout   VertexLayout
}

// DrawCmd draws the mesh's currently uploaded index range with the given
// pipeline. Uniform values may be float32, int32, [4]float32 or
// [16]float32; samplers bind textures by uniform name.
type DrawCmd struct {
	Pipe     Pipeline
	Mesh     Mesh
	Uniforms map[string]any
	Samplers map[string]Texture
}
