package main

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

func compileTestSchema(t *testing.T, name string) *jsonschema.Schema {
	t.Helper()
	s, err := compileSchema(filepath.Join("..", "..", "schemas", name))
	if err != nil {
		t.Fatalf("compileSchema(%s): %v", name, err)
	}
	return s
}

func TestBundledFilesMatchSchemas(t *testing.T) {
	roomSchema := compileTestSchema(t, "room.schema.json")
	scenarioSchema := compileTestSchema(t, "scenario.schema.json")

	cfg, err := checkRoom(roomSchema, filepath.Join("..", "..", "data", "room.yaml"))
	if err != nil {
		t.Fatalf("data/room.yaml: %v", err)
	}
	if len(cfg.Ground) == 0 {
		t.Error("room.yaml should define ground planes")
	}

	files, err := filepath.Glob(filepath.Join("..", "..", "data", "scenarios", "*.yaml"))
	if err != nil || len(files) == 0 {
		t.Fatalf("no scenarios found: %v", err)
	}
	for _, path := range files {
		if _, err := checkScenario(scenarioSchema, path); err != nil {
			t.Errorf("%s: %v", path, err)
		}
	}
	t.Logf("✓ 房间配置和 %d 个脚本通过校验", len(files))
}

func TestSchemaRejectsBadDocuments(t *testing.T) {
	roomSchema := compileTestSchema(t, "room.schema.json")
	scenarioSchema := compileTestSchema(t, "scenario.schema.json")

	tests := []struct {
		name   string
		schema *jsonschema.Schema
		yaml   string
	}{
		{"未知顶层字段", roomSchema, "weather: rain\n"},
		{"上限为零", roomSchema, "watering: {globalMaxFlowers: 0}\n"},
		{"非整数数量", roomSchema, "watering: {maxFlowers: 2.5}\n"},
		{"颜色越界", roomSchema, "watering: {dryColor: {r: 2}}\n"},
		{"插槽重复", roomSchema, "puzzle: {sockets: [mushroom, mushroom, flower]}\n"},
		{"地面缺少边界", roomSchema, "ground: [{name: g, minX: 0}]\n"},
		{"脚本缺少时长", scenarioSchema, "dt: 0.1\n"},
		{"未知物品", scenarioSchema, "duration: 1\nsteps: [{at: 0, place: sword}]\n"},
		{"坐标缺少 z", scenarioSchema, "duration: 1\nsteps: [{at: 0, water: {x: 1}}]\n"},
		{"步骤缺少时间", scenarioSchema, "duration: 1\nsteps: [{reset: true}]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := validateYAML(tt.schema, []byte(tt.yaml)); err == nil {
				t.Errorf("expected schema violation for %q", tt.yaml)
			}
		})
	}
}

func TestSchemaAcceptsPartialRoom(t *testing.T) {
	roomSchema := compileTestSchema(t, "room.schema.json")

	// 省略的字段由默认配置补齐
	doc := "watering:\n  maxFlowers: 4\n  dryColor: {r: 0.5, g: 0.3, b: 0.1, a: 1}\n"
	if err := validateYAML(roomSchema, []byte(doc)); err != nil {
		t.Errorf("partial room config should pass: %v", err)
	}
}

func TestYAMLToJSONValueKeepsIntegers(t *testing.T) {
	v, err := yamlToJSONValue([]byte("count: 40\nratio: 0.5\n"))
	if err != nil {
		t.Fatalf("yamlToJSONValue() error: %v", err)
	}
	m, ok := v.(map[string]any)
	if !ok {
		t.Fatalf("expected object, got %T", v)
	}
	if n, ok := m["count"].(json.Number); !ok || n.String() != "40" {
		t.Errorf("count: got %#v, want json.Number 40", m["count"])
	}

	if _, err := yamlToJSONValue([]byte("a: [")); err == nil {
		t.Error("expected error for invalid YAML")
	}
}
