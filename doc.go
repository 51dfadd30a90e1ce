// Package supportdesk embeds the customer-support assistant in a Go program:
// retrieval over the product and policy corpus, order status lookups and the
// return-window check, without running the HTTP server.
//
// # Lexical only
//
//	client, _ := supportdesk.New(supportdesk.WithDataDir("data"))
//	defer client.Close()
//	answer, _ := client.Ask(ctx, "do you sell wireless mice?")
//
// # Semantic retrieval
//
// Build the vector store once, then query it:
//
//	client, _ := supportdesk.New(
//	    supportdesk.WithDataDir("data"),
//	    supportdesk.WithOpenAI(os.Getenv("OPENAI_API_KEY"), "text-embedding-3-small"),
//	)
//	report, _ := client.Ingest(ctx)
//	answer, _ := client.Ask(ctx, "how long do I have to return a mouse?")
//
// Ingest reloads the online services, so later queries see the new store.
package supportdesk
