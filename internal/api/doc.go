// Package api exposes the document store and editing operations over HTTP.
//
// The server is a chi router with three resource routes per document key
// (owner and kind path segments):
//
//	GET    /v1/documents/{owner}/{kind}           load a document
//	PUT    /v1/documents/{owner}/{kind}           replace a document
//	DELETE /v1/documents/{owner}/{kind}           delete a document
//	POST   /v1/documents/{owner}/{kind}/commands  apply an editing command
//
// Commands mirror the operations of [pkg/block/ops]: the request names an
// operation and its parameters, the server loads the document, applies the
// operation, validates the result, and saves it back. Errors carry a stable
// machine-readable code in the JSON body.
package api
