package services

import (
	"errors"

	"github.com/CSCE331-Fall2024/project-3-team-4b-sub000/entity"
	"github.com/CSCE331-Fall2024/project-3-team-4b-sub000/repository"
)

type ContainerService struct {
	Repo *repository.ContainerRepository
}

func NewContainerService(repo *repository.ContainerRepository) *ContainerService {
	return &ContainerService{Repo: repo}
}

type ContainerIn struct {
	Name            string `json:"name" binding:"required"`
	Price           int64  `json:"price" binding:"min=0"`
	NumberOfEntrees int    `json:"number_of_entrees" binding:"min=0"`
	NumberOfSides   int    `json:"number_of_sides" binding:"min=0,max=1"`
}

func (s *ContainerService) List(search string) ([]entity.Container, error) {
	return s.Repo.List(search)
}

func (s *ContainerService) Create(in *ContainerIn) (*entity.Container, error) {
	c := entity.Container{
		Name:            in.Name,
		Price:           in.Price,
		NumberOfEntrees: in.NumberOfEntrees,
		NumberOfSides:   in.NumberOfSides,
	}
	if err := s.Repo.Create(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *ContainerService) Update(id uint, in *ContainerIn) (*entity.Container, error) {
	c, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, errors.New("container not found")
	}
	c.Name = in.Name
	c.Price = in.Price
	c.NumberOfEntrees = in.NumberOfEntrees
	c.NumberOfSides = in.NumberOfSides
	if err := s.Repo.Update(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ContainerService) Delete(id uint) error {
	affected, err := s.Repo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.New("container not found")
	}
	return nil
}
