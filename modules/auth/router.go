package auth

import "github.com/go-chi/chi/v5"

// Mount registers the module's routes on the provided router: the login
// endpoint and the protected group gated by the extractor.
//
// Example:
//
//	r := chi.NewRouter()
//	auth.Mount(r, svc, auth.NewExtractor(codec))
func Mount(r chi.Router, svc *Service, extractor IdentityExtractor) {
	r.Post("/authorization", svc.HandleAuthorize())

	r.Route("/protected", func(pr chi.Router) {
		pr.Use(Protect(extractor))
		pr.Post("/", svc.HandleProtected())
		pr.Post("/norm", svc.HandleProtectedEcho())
	})
}
