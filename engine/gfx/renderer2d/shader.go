package renderer2d

// Batch shader: every vertex carries its texture slot so color quads,
// icons and glyphs share one pipeline.

const batchVertexSource = `
#version 330 core
layout(location=0) in vec2 aPos;
layout(location=1) in vec4 aColor;
layout(location=2) in vec2 aUV;
layout(location=3) in float aTexIndex;

uniform mat4 uVP;

out vec4 vColor;
out vec2 vUV;
flat out float vTexIndex;

void main() {
    vColor = aColor;
    vUV = aUV;
    vTexIndex = aTexIndex;
    gl_Position = uVP * vec4(aPos, 0.0, 1.0);
}
` + "\x00"

const batchFragmentSource = `
#version 330 core
in vec4 vColor;
in vec2 vUV;
flat in float vTexIndex;

uniform sampler2D uTex[16];

out vec4 FragColor;

void main() {
    int idx = int(vTexIndex + 0.5);
    FragColor = vColor * texture(uTex[idx], vUV);
}
` + "\x00"
