package data

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

const (
	actionsSchemaURL = "https://github.com/minaorangina/agricola/data/actions.schema.json"
	cardsSchemaURL   = "https://github.com/minaorangina/agricola/data/cards.schema.json"
)

const costPattern = `^(\\s*[0-9]+ [a-z_]+\\s*(,\\s*[0-9]+ [a-z_]+\\s*)*)?$`

var actionsSchema = `{
  "type": "object",
  "required": ["actions", "layout"],
  "additionalProperties": false,
  "properties": {
    "actions": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["key", "effect"],
        "additionalProperties": false,
        "properties": {
          "key": {"type": "string", "minLength": 1},
          "stage": {"type": "integer", "minimum": 0, "maximum": 6},
          "effect": {"type": "string", "minLength": 1},
          "accumulate": {"type": "boolean"},
          "goods": {"type": "string"},
          "rate": {"type": "integer", "minimum": 0},
          "output": {"$ref": "#/$defs/cost"},
          "costs": {"type": "object", "additionalProperties": {"$ref": "#/$defs/cost"}}
        }
      }
    },
    "layout": {
      "type": "object",
      "required": ["base", "stages"],
      "additionalProperties": false,
      "properties": {
        "base": {"$ref": "#/$defs/placements"},
        "three_players": {"$ref": "#/$defs/placements"},
        "four_players": {"$ref": "#/$defs/placements"},
        "stages": {
          "type": "array",
          "items": {
            "type": "object",
            "required": ["stage", "at"],
            "properties": {
              "stage": {"type": "integer", "minimum": 1, "maximum": 6},
              "at": {"type": "array", "items": {"$ref": "#/$defs/coord"}}
            }
          }
        }
      }
    }
  },
  "$defs": {
    "cost": {"type": "string", "pattern": "` + costPattern + `"},
    "coord": {"type": "array", "minItems": 2, "maxItems": 2, "items": {"type": "integer", "minimum": 0}},
    "placements": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["action", "at"],
        "properties": {
          "action": {"type": "string"},
          "at": {"$ref": "#/$defs/coord"}
        }
      }
    }
  }
}`

var cardsSchema = `{
  "type": "object",
  "required": ["cards"],
  "additionalProperties": false,
  "properties": {
    "cards": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["key", "effect"],
        "additionalProperties": false,
        "properties": {
          "key": {"type": "string", "minLength": 1},
          "cost": {"type": "array", "items": {"$ref": "#/$defs/cost"}},
          "effect": {"type": "string", "minLength": 1},
          "points": {"type": "integer"},
          "pass_left": {"type": "boolean"},
          "min_players": {"type": "integer", "minimum": 1, "maximum": 4},
          "output": {"$ref": "#/$defs/cost"},
          "cook": {"$ref": "#/$defs/rates"},
          "bake": {"$ref": "#/$defs/rates"},
          "bake_limit": {"type": "integer", "minimum": 0},
          "exchange": {"$ref": "#/$defs/rates"},
          "future": {
            "type": "object",
            "required": ["goods", "qty", "rounds"],
            "properties": {
              "goods": {"type": "string"},
              "qty": {"type": "integer", "minimum": 1},
              "rounds": {"type": "integer", "minimum": 1, "maximum": 14}
            }
          }
        }
      }
    }
  },
  "$defs": {
    "cost": {"type": "string", "pattern": "` + costPattern + `"},
    "rates": {"type": "object", "additionalProperties": {"type": "integer", "minimum": 0}}
  }
}`

var (
	compileOnce sync.Once
	compiled    map[string]*jsonschema.Schema
	compileErr  error
)

func schemas() (map[string]*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()
		sources := map[string]string{
			actionsSchemaURL: actionsSchema,
			cardsSchemaURL:   cardsSchema,
		}
		for url, src := range sources {
			if err := c.AddResource(url, strings.NewReader(src)); err != nil {
				compileErr = err
				return
			}
		}

		compiled = map[string]*jsonschema.Schema{}
		for url := range sources {
			s, err := c.Compile(url)
			if err != nil {
				compileErr = err
				return
			}
			compiled[url] = s
		}
	})
	return compiled, compileErr
}

// validate checks a YAML document against the schema at url. The document is
// taken through JSON first so the validator sees plain JSON values.
func validate(url string, raw []byte) error {
	all, err := schemas()
	if err != nil {
		return err
	}
	s, ok := all[url]
	if !ok {
		return fmt.Errorf("no schema registered for %s", url)
	}

	var doc interface{}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return err
	}
	asJSON, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	var v interface{}
	if err := json.Unmarshal(asJSON, &v); err != nil {
		return err
	}

	return s.Validate(v)
}
