package services

import (
	"fmt"

	"github.com/yukikurage/task-manager/internal/constants"
	"github.com/yukikurage/task-manager/internal/models"
	"github.com/yukikurage/task-manager/internal/repository"
	"github.com/yukikurage/task-manager/internal/utils"
)

type TagService struct {
	tagRepo repository.TagRepository
}

func NewTagService(tagRepo repository.TagRepository) *TagService {
	return &TagService{tagRepo: tagRepo}
}

func (s *TagService) List(search string, params utils.PaginationParams) ([]models.Tag, int64, error) {
	tags, total, err := s.tagRepo.List(repository.ListFilter{
		Search:   cleanSearch(search),
		Page:     params.Page,
		PageSize: params.Limit,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tags: %w", err)
	}
	return tags, total, nil
}

func (s *TagService) Get(id uint64) (*models.Tag, error) {
	tag, err := s.tagRepo.FindByID(id)
	if err != nil {
		return nil, translate("tag", id, err)
	}
	return tag, nil
}

func (s *TagService) Create(name string) (*models.Tag, error) {
	name, err := cleanName("name", name, constants.MaxTagNameLength)
	if err != nil {
		return nil, err
	}
	tag := &models.Tag{Name: name}
	if err := s.tagRepo.Create(tag); err != nil {
		return nil, translate("tag", 0, err)
	}
	return tag, nil
}

func (s *TagService) Update(id uint64, name string) (*models.Tag, error) {
	name, err := cleanName("name", name, constants.MaxTagNameLength)
	if err != nil {
		return nil, err
	}
	tag, err := s.tagRepo.FindByID(id)
	if err != nil {
		return nil, translate("tag", id, err)
	}
	tag.Name = name
	if err := s.tagRepo.Update(tag); err != nil {
		return nil, translate("tag", id, err)
	}
	return tag, nil
}

// Delete removes the tag from every task and then deletes it.
func (s *TagService) Delete(id uint64) error {
	return translate("tag", id, s.tagRepo.Delete(id))
}
