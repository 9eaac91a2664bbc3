package liquidgen

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

// Config holds one liquid's generation parameters. Every block in a
// run shares these; archetype decrement recipes are fixed in code.
type Config struct {
	BaseName       string    `yaml:"base_name"`
	Material       string    `yaml:"material"`
	Friction       []float64 `yaml:"friction"`
	FlowingTexture string    `yaml:"flowing_texture"`
	StillTexture   string    `yaml:"still_texture"`
	Fog            FogConfig `yaml:"fog"`
	OutputDir      string    `yaml:"output_dir"`
}

type FogConfig struct {
	Color    ColorConfig `yaml:"color"`
	Distance float64     `yaml:"distance"`
}

type ColorConfig struct {
	Red   float64 `yaml:"red"`
	Green float64 `yaml:"green"`
	Blue  float64 `yaml:"blue"`
	Alpha float64 `yaml:"alpha"`
}

// LoadConfig reads and validates a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}
	if err := cfg.finish(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// finish fills defaults and validates. Shared by the file and
// interactive paths.
func (cfg *Config) finish() error {
	if cfg.BaseName == "" {
		return fmt.Errorf("base_name is required")
	}
	if cfg.Material == "" {
		cfg.Material = cfg.BaseName
	}
	if len(cfg.Friction) == 0 {
		cfg.Friction = []float64{0.8, 0.5, 0.8}
	}
	if len(cfg.Friction) != 3 {
		return fmt.Errorf("friction must have exactly 3 components, got %d", len(cfg.Friction))
	}
	if cfg.FlowingTexture == "" {
		cfg.FlowingTexture = "flowing_" + cfg.BaseName + ".png"
	}
	if cfg.StillTexture == "" {
		cfg.StillTexture = "still_" + cfg.BaseName + ".png"
	}
	if cfg.Fog.Distance == 0 {
		cfg.Fog.Distance = 50
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	return nil
}

func (cfg *Config) frictionVec() mgl64.Vec3 {
	return mgl64.Vec3{cfg.Friction[0], cfg.Friction[1], cfg.Friction[2]}
}

// PromptConfig reads the same parameters as LoadConfig from
// line-oriented input. Empty answers take the defaults finish fills
// in; friction and fog color are comma-separated tuples.
func PromptConfig(r io.Reader, w io.Writer) (*Config, error) {
	sc := bufio.NewScanner(r)
	prompt := func(label string) (string, error) {
		fmt.Fprintf(w, "%s: ", label)
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", fmt.Errorf("read input: %w", err)
			}
			return "", fmt.Errorf("unexpected end of input")
		}
		return strings.TrimSpace(sc.Text()), nil
	}

	var cfg Config
	var err error

	if cfg.BaseName, err = prompt("Name of block, e.g. 'water'"); err != nil {
		return nil, err
	}
	if cfg.Material, err = prompt("Material name, e.g. 'water'"); err != nil {
		return nil, err
	}

	frictionLine, err := prompt("Friction, 'x,y,z'")
	if err != nil {
		return nil, err
	}
	if frictionLine != "" {
		if cfg.Friction, err = parseFloats(frictionLine, 3); err != nil {
			return nil, fmt.Errorf("friction: %w", err)
		}
	}

	if cfg.FlowingTexture, err = prompt("Flowing texture name"); err != nil {
		return nil, err
	}
	if cfg.StillTexture, err = prompt("Still texture name"); err != nil {
		return nil, err
	}

	colorLine, err := prompt("Fog color, 'r,g,b,a'")
	if err != nil {
		return nil, err
	}
	if colorLine != "" {
		c, err := parseFloats(colorLine, 4)
		if err != nil {
			return nil, fmt.Errorf("fog color: %w", err)
		}
		cfg.Fog.Color = ColorConfig{Red: c[0], Green: c[1], Blue: c[2], Alpha: c[3]}
	}

	distLine, err := prompt("Fog distance")
	if err != nil {
		return nil, err
	}
	if distLine != "" {
		if cfg.Fog.Distance, err = strconv.ParseFloat(distLine, 64); err != nil {
			return nil, fmt.Errorf("fog distance: %w", err)
		}
	}

	if err := cfg.finish(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func parseFloats(line string, want int) ([]float64, error) {
	parts := strings.Split(line, ",")
	if len(parts) != want {
		return nil, fmt.Errorf("expected %d comma-separated values, got %d", want, len(parts))
	}
	out := make([]float64, want)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("value %q: %w", p, err)
		}
		out[i] = v
	}
	return out, nil
}
