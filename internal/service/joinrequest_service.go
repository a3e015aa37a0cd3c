package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"joinme/internal/models"
	"joinme/internal/repository"
)

const (
	defaultRequestsTake = 50
	maxRequestsTake     = 100
)

// JoinRequestService provides join-request business logic. Accepting and
// creating requests fire direct messages as side effects; those are best
// effort and never fail the main operation.
type JoinRequestService struct {
	joinRepo    repository.JoinRequestRepository
	postRepo    repository.PostRepository
	messageRepo repository.MessageRepository
	logger      *slog.Logger
}

// NewJoinRequestService returns a new JoinRequestService.
func NewJoinRequestService(joinRepo repository.JoinRequestRepository, postRepo repository.PostRepository, messageRepo repository.MessageRepository, logger *slog.Logger) *JoinRequestService {
	return &JoinRequestService{
		joinRepo:    joinRepo,
		postRepo:    postRepo,
		messageRepo: messageRepo,
		logger:      logger,
	}
}

// Create records senderID's request to join a post. Repeated requests for
// the same post return the existing row unchanged, whatever its status.
func (s *JoinRequestService) Create(ctx context.Context, senderID, postID uint) (*models.JoinRequest, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !post.Active {
		return nil, models.NewValidationError("Post is no longer active")
	}
	if post.AuthorID == senderID {
		return nil, models.NewValidationError("Cannot request to join your own post")
	}

	existing, err := s.joinRepo.GetByPostAndSender(ctx, postID, senderID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	req := &models.JoinRequest{
		PostID:   postID,
		SenderID: senderID,
		Status:   models.JoinRequestStatusPending,
	}
	if err := s.joinRepo.Create(ctx, req); err != nil {
		// Lost a race with a concurrent identical request; return theirs.
		if appErr, ok := err.(*models.AppError); ok && appErr.Code == "CONFLICT" {
			return s.joinRepo.GetByPostAndSender(ctx, postID, senderID)
		}
		return nil, err
	}

	created, err := s.joinRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	s.notifyAuthor(ctx, created, post)
	return created, nil
}

// Respond lets the post author accept or reject a pending request.
func (s *JoinRequestService) Respond(ctx context.Context, userID, requestID uint, status models.JoinRequestStatus) (*models.JoinRequest, error) {
	if status != models.JoinRequestStatusAccepted && status != models.JoinRequestStatusRejected {
		return nil, models.NewValidationError("Status must be ACCEPTED or REJECTED")
	}

	req, err := s.joinRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.Post.AuthorID != userID {
		return nil, models.NewForbiddenError("Only the post author can respond to join requests")
	}
	if req.Status != models.JoinRequestStatusPending {
		return nil, models.NewValidationError("Join request has already been answered")
	}

	if err := s.joinRepo.UpdateStatus(ctx, requestID, string(status)); err != nil {
		return nil, err
	}
	req.Status = status

	if status == models.JoinRequestStatusAccepted {
		s.sendAcceptance(ctx, req)
	}
	return req, nil
}

// ListForAuthor returns requests against the user's posts, newest first.
func (s *JoinRequestService) ListForAuthor(ctx context.Context, userID uint, take, skip int) ([]*models.JoinRequest, error) {
	if take <= 0 {
		take = defaultRequestsTake
	}
	if take > maxRequestsTake {
		take = maxRequestsTake
	}
	if skip < 0 {
		skip = 0
	}

	reqs, err := s.joinRepo.ListForAuthor(ctx, userID, take, skip)
	if err != nil {
		return nil, err
	}
	if reqs == nil {
		reqs = []*models.JoinRequest{}
	}
	return reqs, nil
}

// notifyAuthor drops a DM in the author's inbox about the new request.
func (s *JoinRequestService) notifyAuthor(ctx context.Context, req *models.JoinRequest, post *models.Post) {
	name := req.Sender.Name
	if name == "" {
		name = "Someone"
	}
	subject := post.Title
	if strings.TrimSpace(subject) == "" {
		subject = truncateRunes(post.Content, titlePrefixRunes)
	}
	msg := &models.Message{
		SenderID:   req.SenderID,
		ReceiverID: post.AuthorID,
		Content:    fmt.Sprintf(`%s wants to join your event: "%s". Check your notifications to accept or reject.`, name, subject),
		Type:       models.MessageTypeText,
	}
	if err := s.messageRepo.Create(ctx, msg); err != nil {
		s.logger.WarnContext(ctx, "failed to send join-request message",
			slog.Uint64("post_id", uint64(post.ID)),
			slog.Uint64("sender_id", uint64(req.SenderID)),
			slog.Any("error", err))
	}
}

// sendAcceptance messages the requester with directions to the activity.
func (s *JoinRequestService) sendAcceptance(ctx context.Context, req *models.JoinRequest) {
	mapsURL := fmt.Sprintf("https://www.google.com/maps/dir/?api=1&destination=%s,%s",
		strconv.FormatFloat(req.Post.Latitude, 'f', -1, 64),
		strconv.FormatFloat(req.Post.Longitude, 'f', -1, 64))
	msg := &models.Message{
		SenderID:   req.Post.AuthorID,
		ReceiverID: req.SenderID,
		Content:    fmt.Sprintf("I've accepted your request! Here is my location: %s", mapsURL),
		Type:       models.MessageTypeText,
	}
	if err := s.messageRepo.Create(ctx, msg); err != nil {
		s.logger.WarnContext(ctx, "failed to send acceptance message",
			slog.Uint64("request_id", uint64(req.ID)),
			slog.Any("error", err))
	}
}
