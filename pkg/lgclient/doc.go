// Package lgclient provides the entry point for constructing a LiteGraph
// REST client that implements the litegraph.Client interface.
//
// It layers endpoint normalization and an optional process-wide default
// client on top of the resource interfaces and types defined in the
// litegraph package. Most applications build a client with New and pass it
// around explicitly:
//
//	client, err := lgclient.New(ctx, &litegraph.Config{
//		Endpoint:   "http://localhost:8701",
//		TenantGUID: "00000000-0000-0000-0000-000000000000",
//		AccessKey:  "litegraphadmin",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	graph, err := client.Graphs().Create(ctx, &litegraph.Graph{Name: "social"})
//
// Programs that prefer a single shared client can call Configure once and
// fetch it anywhere with Default:
//
//	if err := lgclient.Configure("http://localhost:8701", tenantGUID, "", accessKey); err != nil {
//		log.Fatal(err)
//	}
//
//	client, err := lgclient.Default()
//
// Reconfiguring swaps the default atomically and closes the previous client.
//
// # Errors
//
// Errors returned by the server unwrap to one of the litegraph.Err* kinds and
// can be matched with errors.Is or the litegraph.IsNotFound style helpers.
// Problems found before a request is sent wrap litegraph.ErrValidation and
// never reach the network.
package lgclient
