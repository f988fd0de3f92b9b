// Package docs holds the OpenAPI description served at /swagger/.
// Regenerate with `swag init -g cmd/api/main.go` after changing handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["health"],
                "summary": "Welcome",
                "responses": {"200": {"description": "OK", "schema": {"type": "string"}}}
            }
        },
        "/health": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["health"],
                "summary": "Healthcheck",
                "responses": {
                    "200": {"description": "ok", "schema": {"type": "string"}},
                    "503": {"description": "unavailable", "schema": {"type": "string"}}
                }
            }
        },
        "/login": {
            "post": {
                "description": "Exchanges credentials for a bearer token. Credentials may also be sent as query parameters.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login",
                "parameters": [
                    {"description": "credentials", "name": "body", "in": "body", "schema": {"$ref": "#/definitions/handler.loginRequest"}},
                    {"type": "string", "description": "username", "name": "Username", "in": "query"},
                    {"type": "string", "description": "password", "name": "Password", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.loginResponse"}},
                    "400": {"description": "Username and Password are required", "schema": {"type": "string"}},
                    "401": {"description": "Incorrect username or password.", "schema": {"type": "string"}}
                }
            }
        },
        "/movies": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["movies"],
                "summary": "List movies",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Movie"}}}
                }
            }
        },
        "/movies/{title}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["movies"],
                "summary": "Get movie by title",
                "parameters": [{"type": "string", "description": "exact title", "name": "title", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Movie"}},
                    "404": {"description": "No movie with this title was found.", "schema": {"type": "string"}}
                }
            }
        },
        "/genres/{title}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["movies"],
                "summary": "Get genre",
                "parameters": [{"type": "string", "description": "genre name", "name": "title", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Genre"}},
                    "404": {"description": "No genre with this title was found.", "schema": {"type": "string"}}
                }
            }
        },
        "/directors/{name}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["movies"],
                "summary": "Get director",
                "parameters": [{"type": "string", "description": "director name", "name": "name", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Director"}},
                    "404": {"description": "No director with this name was found.", "schema": {"type": "string"}}
                }
            }
        },
        "/users": {
            "post": {
                "description": "Creates a new user. The password is stored as a bcrypt hash.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Register",
                "parameters": [{"description": "new user", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.registerRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.User"}},
                    "400": {"description": "malformed JSON body", "schema": {"type": "string"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/users/{username}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Get user",
                "parameters": [{"type": "string", "description": "username", "name": "username", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.User"}},
                    "404": {"description": "No user with this username was found.", "schema": {"type": "string"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "description": "Replaces only the fields present in the body. A new password is hashed before storage.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Update user",
                "parameters": [
                    {"type": "string", "description": "username", "name": "username", "in": "path", "required": true},
                    {"description": "fields to change", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.updateUserRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.User"}},
                    "403": {"description": "You can only modify your own account.", "schema": {"type": "string"}},
                    "404": {"description": "No user with this username was found.", "schema": {"type": "string"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"type": "object", "additionalProperties": true}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["text/plain"],
                "tags": ["users"],
                "summary": "Deregister",
                "parameters": [{"type": "string", "description": "username", "name": "username", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "<username> was deleted.", "schema": {"type": "string"}},
                    "404": {"description": "No user with this username was found.", "schema": {"type": "string"}}
                }
            }
        },
        "/users/{username}/favoritemovies": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "List favorite movie ids",
                "parameters": [{"type": "string", "description": "username", "name": "username", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "string"}}},
                    "404": {"description": "No user with this username was found.", "schema": {"type": "string"}}
                }
            }
        },
        "/users/{username}/movies/{movieID}": {
            "patch": {
                "security": [{"BearerAuth": []}],
                "description": "Adding a movie that is already a favorite changes nothing.",
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Add a movie to favorites",
                "parameters": [
                    {"type": "string", "description": "username", "name": "username", "in": "path", "required": true},
                    {"type": "string", "description": "movie ObjectID", "name": "movieID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.User"}},
                    "400": {"description": "invalid movie id", "schema": {"type": "string"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "description": "Removing a movie that is not a favorite changes nothing.",
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Remove a movie from favorites",
                "parameters": [
                    {"type": "string", "description": "username", "name": "username", "in": "path", "required": true},
                    {"type": "string", "description": "movie ObjectID", "name": "movieID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.User"}},
                    "400": {"description": "invalid movie id", "schema": {"type": "string"}}
                }
            }
        }
    },
    "definitions": {
        "handler.loginRequest": {
            "type": "object",
            "properties": {"Password": {"type": "string"}, "Username": {"type": "string"}}
        },
        "handler.loginResponse": {
            "type": "object",
            "properties": {"token": {"type": "string"}, "user": {"$ref": "#/definitions/models.User"}}
        },
        "handler.registerRequest": {
            "type": "object",
            "properties": {
                "Birth": {"type": "string"},
                "Email": {"type": "string"},
                "Password": {"type": "string"},
                "Username": {"type": "string"}
            }
        },
        "handler.updateUserRequest": {
            "type": "object",
            "properties": {
                "Birth": {"type": "string"},
                "Email": {"type": "string"},
                "Password": {"type": "string"},
                "Username": {"type": "string"}
            }
        },
        "models.Director": {
            "type": "object",
            "properties": {
                "Bio": {"type": "string"},
                "Birth": {"type": "string"},
                "Death": {"type": "string"},
                "Name": {"type": "string"}
            }
        },
        "models.Genre": {
            "type": "object",
            "properties": {"Description": {"type": "string"}, "Name": {"type": "string"}}
        },
        "models.Movie": {
            "type": "object",
            "properties": {
                "Actors": {"type": "array", "items": {"type": "string"}},
                "Description": {"type": "string"},
                "Director": {"$ref": "#/definitions/models.Director"},
                "Featured": {"type": "boolean"},
                "Genre": {"$ref": "#/definitions/models.Genre"},
                "ImagePath": {"type": "string"},
                "Rating": {"type": "string"},
                "ReleaseYear": {"type": "string"},
                "Title": {"type": "string"},
                "_id": {"type": "string"}
            }
        },
        "models.User": {
            "type": "object",
            "properties": {
                "Birth": {"type": "string"},
                "Email": {"type": "string"},
                "FavoriteMovies": {"type": "array", "items": {"type": "string"}},
                "Username": {"type": "string"},
                "_id": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "myFlix API",
	Description:      "Movie catalog with user accounts and favorite lists.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
