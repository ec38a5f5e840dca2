package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Users() UserRepository
	Wishes() WishRepository
	Offers() OfferRepository
	Orders() OrderRepository
	OrphanedSessions() OrphanedSessionRepository
}
