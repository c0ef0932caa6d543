// internal/repository/mock_gen.go
package repository

//go:generate mockgen -source=./user.go -destination=../mocks/mock_user_repository.go -package=mocks UserRepositoryIface
//go:generate mockgen -source=./association.go -destination=../mocks/mock_association_repository.go -package=mocks AssociationRepositoryIface
