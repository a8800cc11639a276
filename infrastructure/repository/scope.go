package repository

import (
	"github.com/Masterminds/squirrel"
	"github.com/esteban-lambda/crm-api/internal/domain"
)

// scopeByAssignee traduz o escopo de leitura em um predicado sobre a
// coluna de responsável. Escopo irrestrito não adiciona cláusula alguma.
func scopeByAssignee(qb squirrel.SelectBuilder, scope domain.Scope, assigneeCol, creatorCol string) squirrel.SelectBuilder {
	if scope.All {
		return qb
	}

	if scope.OwnerOrCreator && creatorCol != "" {
		return qb.Where(squirrel.Or{
			squirrel.Eq{assigneeCol: scope.UserIDs},
			squirrel.Eq{creatorCol: scope.UserIDs},
		})
	}

	return qb.Where(squirrel.Eq{assigneeCol: scope.UserIDs})
}

// scopeByAccount restringe entidades alcançadas transitivamente pelos
// deals visíveis (Account, Contact)
func scopeByAccount(qb squirrel.SelectBuilder, scope domain.Scope, accountCol string) squirrel.SelectBuilder {
	if scope.All {
		return qb
	}

	return qb.Where(squirrel.Eq{accountCol: scope.AccountIDs})
}
