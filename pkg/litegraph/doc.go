// Package litegraph provides types, interfaces, and helpers for working with
// the LiteGraph REST API.
//
// # Overview
//
// The litegraph package defines the domain types (Tenant, Graph, Node, Edge,
// Tag, Label, VectorMetadata, User, Credential, Backup) and the interfaces for
// resource-oriented clients (GraphsClient, NodesClient, and so on). Each
// resource client interface is assembled from small capability interfaces
// such as Exister, Creator and Enumerator, so code that only needs one
// capability can accept just that.
//
// A concrete implementation is provided by the lgclient package:
//
//	cli, err := lgclient.New(ctx, &litegraph.Config{
//		Endpoint:   "http://localhost:8701",
//		TenantGUID: tenantGUID,
//		GraphGUID:  graphGUID,
//		AccessKey:  accessKey,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer cli.Close()
//
//	page, err := cli.Nodes().EnumerateWithQuery(ctx,
//		litegraph.NewEnumerationQuery().WithMaxResults(100).WithLabels("person"))
//
// # Scope
//
// Most resources live below a tenant and some below a graph. The tenant and
// graph come from the Config; Client.WithGraph returns a view bound to a
// different graph. A call on a resource whose scope is missing fails with
// ErrTenantRequired or ErrGraphRequired before any request is sent.
//
// # Errors
//
// Server errors are returned as *APIError and unwrap to one of the Err* kinds
// below ErrClient. Connection failures that survive the retry budget and
// error statuses with a non-JSON body are returned as *TransportError.
// Problems detected locally unwrap to ErrValidation. Exists and the backup
// helpers on AdminClient report any failure as false instead of an error.
package litegraph
