package glbackend

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/padgrove/padgrove/engine/core"
)

type RendererGL struct {
	win core.Window
}

func NewRendererGL(win core.Window, _ core.Config) (*RendererGL, error) {
	r := &RendererGL{win: win}
	if err := r.Init(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *RendererGL) Init() error {
	// Premultiplied-free standard alpha blending; pipelines toggle it per draw.
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	return nil
}

func (r *RendererGL) Shutdown() {}

func (r *RendererGL) Resize(w, h int) {
	gl.Viewport(0, 0, int32(w), int32(h))
}

func (r *RendererGL) Clear(rf, gf, bf, af float32) {
	gl.ClearColor(rf, gf, bf, af)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// --- resources ---

type pipeline struct {
	program   uint32
	depthTest bool
	blend     bool
}

type texture struct{ id uint32 }

type mesh struct {
	vao, vbo, ibo uint32
	vertCap       int // floats
	indCap        int // indices
	indexCount    int32
}

func (r *RendererGL) CreatePipeline(d core.PipelineDesc) (core.Pipeline, error) {
	prog, err := makeProgram(d.VertexSource, d.FragmentSource)
	if err != nil {
		return nil, err
	}
	return &pipeline{program: prog, depthTest: d.DepthTest, blend: d.Blend}, nil
}

func (r *RendererGL) CreateTexture(d core.TextureDesc) (core.Texture, error) {
	if d.Format != core.TextureRGBA8 {
		return nil, fmt.Errorf("unsupported texture format %d", d.Format)
	}
	if len(d.Pixels) < d.Width*d.Height*4 {
		return nil, fmt.Errorf("texture pixels: want %d bytes, got %d", d.Width*d.Height*4, len(d.Pixels))
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, glFilter(d.MinFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, glFilter(d.MagFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, glWrap(d.WrapU))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, glWrap(d.WrapV))
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(d.Width), int32(d.Height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(d.Pixels))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return &texture{id: id}, nil
}

func (r *RendererGL) CreateMesh(d core.MeshDesc) (core.Mesh, error) {
	m := &mesh{vertCap: len(d.Vertices), indCap: len(d.Indices)}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(d.Vertices)*4, gl.Ptr(d.Vertices), gl.DYNAMIC_DRAW)

	for _, a := range d.Layout.Attributes {
		if a.Type != core.AttribFloat32 {
			return nil, fmt.Errorf("unsupported attrib type %d", a.Type)
		}
		gl.EnableVertexAttribArray(uint32(a.Location))
		gl.VertexAttribPointer(uint32(a.Location), int32(a.Size), gl.FLOAT, false,
			int32(d.Layout.Stride), unsafe.Pointer(uintptr(a.Offset)))
	}

	gl.GenBuffers(1, &m.ibo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ibo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(d.Indices)*4, gl.Ptr(d.Indices), gl.DYNAMIC_DRAW)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)

	m.indexCount = int32(len(d.Indices))
	return m, nil
}

func (r *RendererGL) UpdateMesh(cm core.Mesh, verts []float32, inds []uint32) error {
	m, ok := cm.(*mesh)
	if !ok {
		return fmt.Errorf("mesh not owned by this backend")
	}
	if len(verts) > m.vertCap || len(inds) > m.indCap {
		return fmt.Errorf("mesh update exceeds capacity (%d/%d verts, %d/%d inds)",
			len(verts), m.vertCap, len(inds), m.indCap)
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(verts)*4, gl.Ptr(verts))
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ibo)
	gl.BufferSubData(gl.ELEMENT_ARRAY_BUFFER, 0, len(inds)*4, gl.Ptr(inds))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)

	m.indexCount = int32(len(inds))
	return nil
}

func (r *RendererGL) Draw(cmd core.DrawCmd) {
	p, ok := cmd.Pipe.(*pipeline)
	if !ok {
		return
	}
	m, ok := cmd.Mesh.(*mesh)
	if !ok || m.indexCount == 0 {
		return
	}

	gl.UseProgram(p.program)
	if p.depthTest {
		gl.Enable(gl.DEPTH_TEST)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
	if p.blend {
		gl.Enable(gl.BLEND)
	} else {
		gl.Disable(gl.BLEND)
	}

	for name, v := range cmd.Uniforms {
		loc := uniformLoc(p.program, name)
		if loc < 0 {
			continue
		}
		switch u := v.(type) {
		case [16]float32:
			gl.UniformMatrix4fv(loc, 1, false, &u[0])
		case [4]float32:
			gl.Uniform4fv(loc, 1, &u[0])
		case float32:
			gl.Uniform1f(loc, u)
		case int32:
			gl.Uniform1i(loc, u)
		case int:
			gl.Uniform1i(loc, int32(u))
		}
	}

	unit := int32(0)
	for name, t := range cmd.Samplers {
		tex, ok := t.(*texture)
		if !ok {
			continue
		}
		loc := uniformLoc(p.program, name)
		if loc < 0 {
			continue
		}
		gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
		gl.BindTexture(gl.TEXTURE_2D, tex.id)
		gl.Uniform1i(loc, unit)
		unit++
	}

	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

func uniformLoc(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func glFilter(s string) int32 {
	if s == "linear" {
		return gl.LINEAR
	}
	return gl.NEAREST
}

func glWrap(s string) int32 {
	if s == "repeat" {
		return gl.REPEAT
	}
	return gl.CLAMP_TO_EDGE
}

// --- shader utilities ---

func makeShader(src string, shaderType uint32) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("shader compile error: %s", log)
	}
	return sh, nil
}

func makeProgram(vsSrc, fsSrc string) (uint32, error) {
	vs, err := makeShader(vsSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := makeShader(fsSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("program link error: %s", log)
	}
	return prog, nil
}
