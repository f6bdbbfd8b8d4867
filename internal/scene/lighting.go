package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"campus-viewer/internal/campus"
	"campus-viewer/internal/geom"
)

// lightScale maps the configured intensities (ambient 1, directional 2 in the reference
// campus) onto the shader's 0–1 terms.
const lightScale = 0.35

// Light is one ambient term plus one directional light.
type Light struct {
	Ambient     float32
	Directional float32
	// Direction points from the scene toward the light.
	Direction geom.Vec3
}

// LightFrom converts the campus lighting config.
func LightFrom(c campus.LightConfig) Light {
	return Light{
		Ambient:     c.Ambient,
		Directional: c.Directional,
		Direction:   geom.FromArray(c.Direction),
	}
}

// ensureShader loads the lit shader the first time it is needed, after the window/GL context exists.
// Failure leaves raylib's default (unlit) shader in use.
func (s *Scene) ensureShader() {
	if s.litTried {
		return
	}
	s.litTried = true
	s.lit = rl.LoadShaderFromMemory(litVS, litFS)
}

// setLightUniforms sets viewPos, lightDir, ambient and intensity on the lit shader (cgo-safe: local arrays).
func (s *Scene) setLightUniforms() {
	if !rl.IsShaderValid(s.lit) {
		return
	}
	pos := s.Camera.Position
	viewPos := [3]float32{pos.X, pos.Y, pos.Z}
	dir := geom.Array(s.light.Direction.Normal())
	a := s.light.Ambient * lightScale
	amb := [4]float32{a, a, a, 1}
	if loc := rl.GetShaderLocation(s.lit, "viewPos"); loc >= 0 {
		rl.SetShaderValueV(s.lit, loc, viewPos[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(s.lit, "lightDir"); loc >= 0 {
		rl.SetShaderValueV(s.lit, loc, dir[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(s.lit, "ambient"); loc >= 0 {
		rl.SetShaderValueV(s.lit, loc, amb[:], rl.ShaderUniformVec4, 1)
	}
	if loc := rl.GetShaderLocation(s.lit, "lightIntensity"); loc >= 0 {
		rl.SetShaderValue(s.lit, loc, []float32{s.light.Directional * lightScale}, rl.ShaderUniformFloat)
	}
}

// Lit shader: albedo texture × material colour, lit by ambient + one directional light.
// Alpha comes from the material colour so dimmed rooms blend.
const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
in vec4 vertexColor;
uniform mat4 mvp;
uniform mat4 matModel;
uniform mat4 matNormal;
out vec3 fragPosition;
out vec2 fragTexCoord;
out vec3 fragNormal;
out vec4 fragColor;
void main() {
  fragPosition = vec3(matModel * vec4(vertexPosition, 1.0));
  fragTexCoord = vertexTexCoord;
  fragNormal = normalize(vec3(matNormal * vec4(vertexNormal, 1.0)));
  fragColor = vertexColor;
  gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
in vec4 fragColor;
uniform sampler2D texture0;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform vec4 ambient;
uniform float lightIntensity;
out vec4 finalColor;
void main() {
  vec4 tint = texture(texture0, fragTexCoord) * colDiffuse * fragColor;
  vec3 N = normalize(fragNormal);
  vec3 V = normalize(viewPos - fragPosition);
  if (dot(N, V) < 0.0) N = -N;
  float NdotL = max(dot(N, normalize(lightDir)), 0.0);
  vec3 lit = tint.rgb * (ambient.rgb + NdotL * lightIntensity);
  finalColor = vec4(lit, tint.a);
}
`
)
