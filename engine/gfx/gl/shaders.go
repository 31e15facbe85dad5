package glbackend

// DefaultVertexShader scales and offsets the unit quad per draw.
const DefaultVertexShader = `
#version 330 core
layout(location=0) in vec2 aPos;
uniform mat4 uProjection;
uniform vec2 uOffset;
uniform vec2 uSize;
void main() {
    gl_Position = uProjection * vec4(aPos * uSize + uOffset, 0.0, 1.0);
}
`

// DefaultFragmentShader fills with the per-draw color; no clamping.
const DefaultFragmentShader = `
#version 330 core
uniform vec4 uColor;
out vec4 FragColor;
void main() {
    FragColor = uColor;
}
`
