// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present dc2ansible contributors

package dc2ansible

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/invopop/jsonschema"
	"github.com/xeipuuv/gojsonschema"
)

// BootstrapSchema returns a JSON schema for a bootstrap document
func BootstrapSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{ExpandedStruct: true}
	schema := reflector.Reflect(&Bootstrap{})

	schema.ID = "https://raw.githubusercontent.com/DadaDaMotha/ansible-deploy-docker-compose-template/main/bootstrap.schema.json"

	return schema
}

// Since every validation operation leverages the same schema, only calculate it once to save some compute cycles
//
// This also prevents any schema changes from occuring at runtime
var schemaOnce = sync.OnceValues(func() (string, error) {
	s := BootstrapSchema()
	b, err := json.Marshal(s)
	return string(b), err
})

// Validate checks if a bootstrap document adheres to the JSON schema
func Validate(bootstrap *Bootstrap) error {
	schema, err := schemaOnce()
	if err != nil {
		return err
	}

	schemaLoader := gojsonschema.NewStringLoader(schema)

	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(bootstrap))
	if err != nil {
		return err
	}

	if result.Valid() {
		return nil
	}

	var resErr error
	for _, err := range result.Errors() {
		resErr = errors.Join(resErr, errors.New(err.String()))
	}

	return resErr
}
