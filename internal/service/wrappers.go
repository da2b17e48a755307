package service

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validation or metrics.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// PostServiceWrapper defines middleware composition for PostService.
type PostServiceWrapper interface {
	Wrap(PostService) PostService
}
