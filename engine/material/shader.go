package material

// ShaderMaterial renders with caller-supplied GLSL sources, uniforms, and
// per-vertex attributes. Missing uniform or attribute locations are logged
// for shader materials instead of silently skipped.
type ShaderMaterial struct {
	base Base

	// VertexShader and FragmentShader are the raw GLSL sources; the
	// renderer prepends the feature preamble before compiling.
	VertexShader   string
	FragmentShader string

	// Uniforms are the declared uniforms, uploaded when the renderer
	// switches to this material or its program, and on its first draw of
	// each frame.
	Uniforms map[string]*Uniform

	// Attributes are user per-vertex arrays uploaded alongside the built-in
	// buffers.
	Attributes map[string]*CustomAttribute

	// Lights exposes the aggregated scene light uniforms to the shader.
	Lights bool

	// Fog exposes the scene fog uniforms to the shader.
	Fog bool

	VertexColors VertexColorMode

	Wireframe          bool
	WireframeLinewidth float32

	Skinning     bool
	MorphTargets bool
	MorphNormals bool
}

// NewShaderMaterial creates a shader material over the given sources.
func NewShaderMaterial(vertexShader, fragmentShader string) *ShaderMaterial {
	return &ShaderMaterial{
		base:               newBase(),
		VertexShader:       vertexShader,
		FragmentShader:     fragmentShader,
		Uniforms:           make(map[string]*Uniform),
		Attributes:         make(map[string]*CustomAttribute),
		WireframeLinewidth: 1,
	}
}

func (m *ShaderMaterial) Base() *Base { return &m.base }
