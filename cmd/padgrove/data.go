package main

import (
	"github.com/padgrove/padgrove/models"
	"github.com/padgrove/padgrove/searchview"
)

// demoRows is the built-in dataset shown until a query backend is wired
// in: two projects with a spread of child item kinds.
func demoRows() []searchview.Row {
	parent := func(it searchview.Item) searchview.Row {
		return searchview.Row{Item: it, Depth: searchview.DepthParent}
	}
	child := func(it searchview.Item) searchview.Row {
		return searchview.Row{Item: it, Depth: searchview.DepthChild}
	}

	return []searchview.Row{
		parent(searchview.ProjectItem{Project: models.Project{
			ID: 1, Name: "Hosting", Icon: []byte{1}, HasDev: true, HasProd: true,
		}}),
		child(searchview.ServerItem{Server: models.Server{
			ID: 10, Desc: "Primary web server", Username: "deploy",
			ServerType: models.SrvApplication, AccessType: models.SrvAccessSSH,
			Environment: models.EnvProd, ProjectID: 1,
		}}),
		child(searchview.ServerWebsiteItem{Website: models.ServerWebsite{
			ID: 20, Desc: "Admin console", URL: "https://admin.example.com",
			Username: "admin", ServerID: 10,
		}}),
		child(searchview.ServerDatabaseItem{Database: models.ServerDatabase{
			ID: 30, Desc: "Orders database", Name: "orders", Text: "orders_db",
			Username: "app", ServerID: 10,
		}}),
		child(searchview.ServerExtraUserAccountItem{User: models.ServerExtraUserAccount{
			ID: 40, Desc: "Backup operator", Username: "backup", ServerID: 10,
		}}),
		parent(searchview.ProjectItem{Project: models.Project{
			ID: 2, Name: "Monitoring", Icon: []byte{1}, HasDev: true, HasUat: true,
		}}),
		child(searchview.ServerItem{Server: models.Server{
			ID: 11, Desc: "Metrics collector", Username: "metrics",
			ServerType: models.SrvMonitoring, AccessType: models.SrvAccessSSH,
			Environment: models.EnvUat, ProjectID: 2,
		}}),
		child(searchview.ServerPoiItem{Poi: models.ServerPointOfInterest{
			ID: 50, Desc: "Alert rules", Path: "/etc/alerts", Text: "rules.yml", ServerID: 11,
		}}),
		child(searchview.ServerLinkItem{Link: models.ServerLink{
			ID: 60, Desc: "Shared gateway", ServerID: 10, ProjectID: 2,
			Environment: models.EnvUat,
		}}),
		child(searchview.ProjectNoteItem{Note: models.ProjectNote{
			ID: 70, Title: "Runbook", Contents: "# Runbook\n\nSee [pager](https://pager.example.com).",
			ProjectID: 2,
		}}),
	}
}
