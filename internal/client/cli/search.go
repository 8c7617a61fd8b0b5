package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/docuseek/docuseek/internal/client/api"
	"github.com/docuseek/docuseek/internal/client/models"
)

// Search runs a question against the uploaded documents and prints the
// generated answer with its supporting passages.
func (a *App) Search(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: search <query>")
		return nil
	}
	query := strings.Join(args, " ")

	resp, err := api.PostJSON[models.SearchResponse](ctx, a.client, "/api/search", models.SearchRequest{Query: query})
	if err != nil {
		printlnFn("Search failed:", err.Error())
		return err
	}

	printlnFn(resp.Answer)
	for i, r := range resp.Results {
		printlnFn(fmt.Sprintf("%d. %s (score %.2f)", i+1, r.DocumentTitle, r.ConfidenceScore))
		printlnFn("   " + r.Content)
	}
	printlnFn(fmt.Sprintf("%d result(s) in %.2fs", resp.TotalResults, resp.ProcessingTime))
	return nil
}

// Docs lists the uploaded documents.
func (a *App) Docs(ctx context.Context) error {
	docs, err := api.GetJSON[[]models.Document](ctx, a.client, "/api/documents")
	if err != nil {
		printlnFn("Could not list documents:", err.Error())
		return err
	}
	if len(docs) == 0 {
		printlnFn("No documents uploaded yet")
		return nil
	}
	for _, d := range docs {
		printlnFn(d.FileID, d.Filename)
	}
	return nil
}

// Profile fetches and prints the current user record from the backend.
func (a *App) Profile(ctx context.Context) error {
	user, err := a.client.GetProfile(ctx)
	if err != nil {
		printlnFn("Could not fetch profile:", err.Error())
		return err
	}
	printlnFn(fmt.Sprintf("%s <%s> role=%s active=%t verified=%t",
		user.Username, user.Email, user.Role, user.IsActive, user.IsVerified))
	return nil
}

// Status prints the local session state: signed-in user, backend
// reachability, and (when the token is a JWT) the token expiry.
func (a *App) Status(ctx context.Context) error {
	st := a.sess.State()
	if !st.IsAuthenticated() {
		printlnFn("Not signed in")
		return nil
	}

	printlnFn("Signed in as", st.User.Email)
	if a.Mode != ModeUnknown {
		printlnFn("Backend:", string(a.Mode))
	}
	if exp, ok := api.TokenExpiry(st.Token); ok {
		printlnFn("Token expires:", exp.Local().Format("2006-01-02 15:04:05"))
	}
	return nil
}
