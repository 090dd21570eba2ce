// Package admin assembles views into an admin panel.
//
// A Builder collects entries during setup. AddView validates each entry before
// anything is registered, so a rejected entry leaves the builder unchanged.
// Build freezes the builder into an Admin: an http.Handler whose routes,
// navigation and template globals never change afterwards.
//
//	b := admin.New(admin.WithConfig(cfg), admin.WithLogger(logger))
//	b.MustAddView(views.NewView(views.Spec{
//		Config:   &views.Config{Name: "reports", Title: "Reports", Path: "/reports"},
//		Template: "reports.tpl",
//	}))
//	app, err := b.Build()
//	if err != nil {
//		return err
//	}
//	app.MountTo(router) // router is a chi.Router
package admin
