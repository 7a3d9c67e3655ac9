package mapping

import (
	"github.com/chris/escrow-payments/pkg/api"
	"github.com/chris/escrow-payments/pkg/escrow"
	"github.com/chris/escrow-payments/pkg/models"
	"github.com/chris/escrow-payments/pkg/money"
)

// ToApiJob converts a domain Job model to an API Job model.
func ToApiJob(job *models.Job) *api.Job {
	milestones := make([]api.Milestone, len(job.Milestones))
	for i := range job.Milestones {
		milestones[i] = *ToApiMilestone(&job.Milestones[i])
	}
	return &api.Job{
		Id:           job.Id,
		Title:        job.Title,
		Description:  job.Description,
		ClientId:     job.ClientId,
		ContractorId: job.ContractorId,
		TotalAmount:  job.TotalAmount.StringFixed(),
		Currency:     job.TotalAmount.Currency(),
		Status:       string(job.Status),
		CreatedAt:    job.CreatedAt,
		UpdatedAt:    job.UpdatedAt,
		Milestones:   milestones,
	}
}

// ToApiMilestone converts a domain Milestone model to an API Milestone model.
func ToApiMilestone(m *models.Milestone) *api.Milestone {
	conditions := make([]api.Condition, len(m.Conditions))
	for i, c := range m.Conditions {
		conditions[i] = api.Condition{
			Id:          c.Id,
			Type:        string(c.Type),
			Operator:    string(c.Operator),
			Value:       c.Value,
			Description: c.Description,
			IsMet:       c.IsMet,
		}
	}
	evidence := make([]api.Evidence, len(m.Evidence))
	for i, e := range m.Evidence {
		evidence[i] = api.Evidence{
			Id:          e.Id,
			Type:        string(e.Type),
			Url:         e.Url,
			Description: e.Description,
			Timestamp:   e.Timestamp,
		}
	}
	return &api.Milestone{
		Id:          m.Id,
		JobId:       m.JobId,
		Title:       m.Title,
		Description: m.Description,
		Amount:      m.Amount.StringFixed(),
		Currency:    m.Amount.Currency(),
		Status:      string(m.Status),
		DueDate:     m.DueDate,
		Conditions:  conditions,
		Evidence:    evidence,
	}
}

// ToApiWallet converts a domain Wallet model to an API Wallet model.
func ToApiWallet(w *models.Wallet) *api.Wallet {
	return &api.Wallet{
		Id:        w.Id,
		OwnerId:   w.OwnerId,
		Balance:   w.Balance.StringFixed(),
		Currency:  w.Currency,
		Address:   w.Address,
		Type:      string(w.Type),
		IsActive:  w.IsActive,
		CreatedAt: w.CreatedAt,
	}
}

// ToApiTransaction converts a domain Transaction model to an API Transaction model.
func ToApiTransaction(tx *models.Transaction) *api.Transaction {
	return &api.Transaction{
		Id:           tx.Id,
		WalletId:     tx.WalletId,
		JobId:        tx.JobId,
		Amount:       tx.Amount.StringFixed(),
		Currency:     tx.Amount.Currency(),
		Type:         string(tx.Type),
		Status:       string(tx.Status),
		Description:  tx.Description,
		ProcessorRef: tx.ProcessorRef,
		Timestamp:    tx.Timestamp,
	}
}

// ToApiStatusChange converts a milestone transition result to its API model.
func ToApiStatusChange(r *escrow.CompleteMilestoneResult) *api.MilestoneStatusChange {
	return &api.MilestoneStatusChange{
		MilestoneId:    r.MilestoneId,
		PreviousStatus: string(r.PreviousStatus),
		NewStatus:      string(r.NewStatus),
		JobStatus:      string(r.JobStatus),
	}
}

// ToApiPaymentRelease converts a release result to its API model.
func ToApiPaymentRelease(r *escrow.ReleasePaymentResult) *api.PaymentRelease {
	return &api.PaymentRelease{
		MilestoneId:      r.MilestoneId,
		PreviousStatus:   string(r.PreviousStatus),
		Amount:           r.Amount.StringFixed(),
		Currency:         r.Amount.Currency(),
		WalletId:         r.WalletId,
		TransactionId:    r.TransactionId,
		NewWalletBalance: r.NewBalance.StringFixed(),
		JobStatus:        string(r.JobStatus),
	}
}

// ToDomainJobSpec converts a NewJob request to the service's JobSpec,
// parsing all decimal-string amounts.
func ToDomainJobSpec(newJob *api.NewJob) (escrow.JobSpec, error) {
	total, err := money.FromString(newJob.TotalAmount, newJob.Currency)
	if err != nil {
		return escrow.JobSpec{}, err
	}

	spec := escrow.JobSpec{
		Title:        newJob.Title,
		Description:  newJob.Description,
		ClientId:     newJob.ClientId,
		ContractorId: newJob.ContractorId,
		TotalAmount:  total,
	}

	for _, nm := range newJob.Milestones {
		amount, err := money.FromString(nm.Amount, newJob.Currency)
		if err != nil {
			return escrow.JobSpec{}, err
		}
		ms := escrow.MilestoneSpec{
			Title:       nm.Title,
			Description: nm.Description,
			Amount:      amount,
			DueDate:     nm.DueDate,
		}
		for _, nc := range nm.Conditions {
			ms.Conditions = append(ms.Conditions, escrow.ConditionSpec{
				Type:        models.ConditionType(nc.Type),
				Operator:    models.ConditionOperator(nc.Operator),
				Value:       nc.Value,
				Description: nc.Description,
			})
		}
		spec.Milestones = append(spec.Milestones, ms)
	}

	return spec, nil
}
