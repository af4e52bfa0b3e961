package repository

import (
	"context"
	"errors"
	"testing"

	"qa_kb_backend/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createInTx(tx QATx, refs []model.ParagraphRef) error {
	qid, err := tx.CreateQuestion("What is X?")
	if err != nil {
		return err
	}
	nCtx, err := tx.AllocateNumber(model.ContextFamily, 0)
	if err != nil {
		return err
	}
	contextID := model.ContextFamily.Format(nCtx)
	if err := tx.CreateContextRows(model.ContextRows(contextID, refs)); err != nil {
		return err
	}
	nAns, err := tx.AllocateNumber(model.AnswerFamily, nCtx)
	if err != nil {
		return err
	}
	answerID := model.AnswerFamily.Format(nAns)
	if err := tx.CreateAnswer(&model.Answer{ID: answerID, Text: "X is Y.", ContextID: contextID}); err != nil {
		return err
	}
	return tx.LinkQuestionAnswer(&model.QALink{QuestionID: qid, AnswerID: answerID})
}

func TestQARepositoryTransactionCommits(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewQARepository(db, NewIDAllocator())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `questions`").
		WithArgs("What is X?").
		WillReturnResult(sqlmock.NewResult(7, 1))
	expectAllocation(mock, "context", "context", 4, "C_A_4_1", 5)
	mock.ExpectExec("INSERT INTO `context`").
		WithArgs("C_A_5_1", int64(1), int64(2), "C_A_5_1", int64(1), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	expectAllocation(mock, "answer", "answers", 3, "A_3_1", 5)
	mock.ExpectExec("INSERT INTO `answers`").
		WithArgs("A_5_1", "X is Y.", "C_A_5_1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `qa`").
		WithArgs(int64(7), "A_5_1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	refs := []model.ParagraphRef{{DocID: 1, ParagID: 2}, {DocID: 1, ParagID: 3}}
	err := repo.WithTransaction(context.Background(), func(tx QATx) error {
		return createInTx(tx, refs)
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQARepositoryTransactionRollsBackOnLinkFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewQARepository(db, NewIDAllocator())
	linkErr := errors.New("duplicate entry")

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `questions`").WillReturnResult(sqlmock.NewResult(8, 1))
	expectAllocation(mock, "context", "context", 5, "C_A_5_1", 6)
	mock.ExpectExec("INSERT INTO `context`").WillReturnResult(sqlmock.NewResult(0, 1))
	expectAllocation(mock, "answer", "answers", 5, "A_5_1", 6)
	mock.ExpectExec("INSERT INTO `answers`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `qa`").WillReturnError(linkErr)
	mock.ExpectRollback()

	err := repo.WithTransaction(context.Background(), func(tx QATx) error {
		return createInTx(tx, []model.ParagraphRef{{DocID: 2, ParagID: 9}})
	})
	assert.ErrorIs(t, err, linkErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQARepositoryUpdateAnswerInTx(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewQARepository(db, NewIDAllocator())

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `answers` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	var affected int64
	err := repo.WithTransaction(context.Background(), func(tx QATx) error {
		var err error
		affected, err = tx.UpdateAnswer("A_5_1", "new text", "C_A_9_1")
		return err
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQARepositoryFindAnswerIDByQuestion(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewQARepository(db, NewIDAllocator())

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT a.ANSWER_ID FROM `qa` JOIN answers a ON a.ANSWER_ID = qa.ANSWER_ID WHERE qa.Q_ID = \\? AND a.CONTEXT_ID = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"ANSWER_ID"}).AddRow("A_2_1"))
	mock.ExpectQuery("SELECT a.ANSWER_ID FROM `qa`").
		WillReturnRows(sqlmock.NewRows([]string{"ANSWER_ID"}))
	mock.ExpectCommit()

	err := repo.WithTransaction(context.Background(), func(tx QATx) error {
		id, err := tx.FindAnswerIDByQuestion(3, "C_A_2_1")
		require.NoError(t, err)
		assert.Equal(t, "A_2_1", id)

		_, err = tx.FindAnswerIDByQuestion(4, "")
		assert.True(t, IsNotFound(err))
		return nil
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQARepositoryUpdateAnswerText(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewQARepository(db, NewIDAllocator())

	mock.ExpectExec("UPDATE `answers` SET `ANSWER_TEXT`=\\? WHERE ANSWER_ID = \\?").
		WithArgs("edited", "A_1_1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	affected, err := repo.UpdateAnswerText(context.Background(), "A_1_1", "edited")
	require.NoError(t, err)
	assert.EqualValues(t, 0, affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}
