package main

import (
	"context"
	"flag"
	"os"
	"time"

	"content-discovery-be/internal/dto"
	"content-discovery-be/internal/entity"
	"content-discovery-be/pkg/appstate"
	"content-discovery-be/pkg/client"

	"github.com/fatih/color"
)

// End-to-end walkthrough against a running server: sign in, browse the feed,
// interact, manage interests, try discovery and search. Run it after
// `go run ./cmd/rest`.
func main() {
	baseURL := flag.String("base-url", "http://localhost:3000", "server base URL")
	stateFile := flag.String("state-file", "simulation_state.gob", "client persistence file")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	api := client.New(*baseURL, nil)
	env := appstate.NewFileEnvironment(*stateFile)
	users := appstate.NewUserStore(api, env)
	content := appstate.NewContentStore(api)
	ui := appstate.NewUIStore(env, nil)

	color.Cyan("Content Discovery Simulation\n")

	color.Yellow("\n[1] Login as demo@example.com")
	user, err := users.Login(ctx, "demo@example.com", "password")
	if err != nil {
		color.Red("login failed: %v", err)
		os.Exit(1)
	}
	color.Green("signed in as %s with %d interests", user.Email, len(user.Interests))

	color.Yellow("\n[2] Adaptive UI mode")
	detected := ui.DetectTimeMode()
	ui.SetTimeMode(detected)
	state := ui.State()
	color.Green("time mode %s, content mode %s, dark mode %v",
		state.CurrentTimeMode, state.CurrentContentMode, ui.IsDarkMode())

	color.Yellow("\n[3] Fetch feed")
	if err := content.FetchFeed(ctx, dto.FeedQuery{Limit: 10}); err != nil {
		color.Red("feed failed: %v", err)
		os.Exit(1)
	}
	feed := content.Feed()
	color.Green("page %d/%d, %d items, %d new in last 24h",
		feed.Pagination.CurrentPage, feed.Pagination.TotalPages, len(feed.Items), feed.NewContentCount)
	for i, item := range feed.Items {
		if i == 3 {
			break
		}
		color.White("  - [%s] %s (%s)", item.ContentType, item.Title, item.SourceName)
	}

	color.Yellow("\n[4] Load more")
	loaded, err := content.LoadMore(ctx)
	if err != nil {
		color.Red("load more failed: %v", err)
	} else {
		color.Green("loaded=%v, now page %d", loaded, content.Feed().Pagination.CurrentPage)
	}

	if items := content.Feed().Items; len(items) > 0 {
		target := items[0]
		color.Yellow("\n[5] Interact with %q", target.Title)
		if _, err := content.InteractWithContent(ctx, target.Id, entity.InteractionView, nil); err != nil {
			color.Red("view failed: %v", err)
		}
		if _, err := content.InteractWithContent(ctx, target.Id, entity.InteractionLike, nil); err != nil {
			color.Red("like failed: %v", err)
		}
		detail, err := api.GetContent(ctx, target.Id)
		if err != nil {
			color.Red("detail failed: %v", err)
		} else {
			color.Green("server counts: views=%d likes=%d", detail.Interactions.Views, detail.Interactions.Likes)
		}
	}

	color.Yellow("\n[6] Add an interest")
	priority := 2
	created, err := users.AddInterest(ctx, &dto.CreateInterestRequest{
		Name:     "Distributed Systems",
		Priority: &priority,
	})
	if err != nil {
		color.Red("create interest failed: %v", err)
	} else {
		color.Green("created interest %s (%s)", created.Name, created.Id)
		if err := users.RemoveInterest(ctx, created.Id); err != nil {
			color.Red("remove interest failed: %v", err)
		} else {
			color.Green("removed it again, %d interests left", len(users.InterestNames()))
		}
	}

	color.Yellow("\n[7] Discovery suggestions")
	suggestions, err := api.TryNewTopics(ctx, users.InterestNames())
	if err != nil {
		color.Red("discovery failed: %v", err)
	} else {
		for _, s := range suggestions.Suggestions {
			color.White("  - %s: %s", s.SuggestedInterest.Name, s.SuggestedInterest.Reason)
		}
	}

	color.Yellow("\n[8] Search")
	results, err := api.Search(ctx, "go", "content", 5)
	if err != nil {
		color.Red("search failed: %v", err)
	} else {
		color.Green("%d of %d results in %dms", len(results.Results), results.Total, results.SearchTime)
	}

	color.Yellow("\n[9] Logout")
	users.Logout(ctx)
	color.Green("done, authenticated=%v", users.IsAuthenticated())
}
