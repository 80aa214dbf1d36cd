package http

import (
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

// openAPIDoc serves the contract to the Swagger UI.
type openAPIDoc struct {
	json string
}

func (d openAPIDoc) ReadDoc() string {
	return d.json
}

// registerSwaggerDoc makes doc the document echo-swagger renders.
func registerSwaggerDoc(doc *openapi3.T) error {
	data, err := doc.MarshalJSON()
	if err != nil {
		return err
	}

	if swag.GetSwagger(swag.Name) == nil {
		swag.Register(swag.Name, openAPIDoc{json: string(data)})
	}
	return nil
}
