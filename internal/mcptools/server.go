package mcptools

import (
	"context"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// version is set by the linker at build time.
var version = "dev"

// NewVecMCPServer creates an MCP server with all 5 embedding tools registered.
func NewVecMCPServer(svc *VecService) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "irvec",
		Version: version,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "load_module",
		Description: "Load a YAML module description and initialize its vocabulary. Registers the module for subsequent queries and reports its stats and capability set.",
	}, svc.LoadModule)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_functions",
		Description: "List the functions of a loaded module in declaration order, with demangled display names and declaration flags.",
	}, svc.ListFunctions)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_triplets",
		Description: "Extract (head, tail, relation) entity triplets for vocabulary training, for one function or the whole module, together with the maximum observed relation value.",
	}, svc.GenerateTriplets)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_embeddings",
		Description: "Compute embeddings at instruction, basic-block or function granularity using the module's initialized vocabulary.",
	}, svc.GenerateEmbeddings)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_entities",
		Description: "Return the module's entity catalog: the ordered list of entity names whose index is the entity_id.",
	}, svc.GetEntities)

	return server
}

// RunMCPServer starts an HTTP server exposing the embedding MCP tools.
func RunMCPServer(ctx context.Context, svc *VecService, addr string) error {
	server := NewVecMCPServer(svc)

	handler := mcp.NewStreamableHTTPHandler(
		func(_ *http.Request) *mcp.Server { return server },
		nil,
	)

	httpServer := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	// Shutdown gracefully when context is cancelled.
	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background())
	}()

	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
