package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// compileSchema 从磁盘编译 JSON Schema
func compileSchema(path string) (*jsonschema.Schema, error) {
	s, err := jsonschema.Compile(path)
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", path, err)
	}
	return s, nil
}

// yamlToJSONValue 把 YAML 文档转成 encoding/json 形式的值
// 数字保留为 json.Number，schema 的 integer 判断才准确
func yamlToJSONValue(data []byte) (any, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("convert YAML to JSON: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decode JSON: %w", err)
	}
	return v, nil
}

// validateYAML 按 schema 校验一个 YAML 文档
func validateYAML(s *jsonschema.Schema, data []byte) error {
	v, err := yamlToJSONValue(data)
	if err != nil {
		return err
	}
	return s.Validate(v)
}
