package parser

import (
	"github.com/h0rv/projbook/internal/command"
	"github.com/h0rv/projbook/internal/domain"
)

func parseClient(flag, args string) (command.Command, error) {
	switch flag {
	case flagAdd:
		return parseAddClient(args)
	case flagEdit:
		return parseEditClient(args)
	case flagDelete:
		id, err := parseTargetID("Client", args, command.UsageDeleteClient)
		if err != nil {
			return nil, err
		}
		return command.DeleteClient{ID: id}, nil
	case flagList:
		return command.ListClients{}, nil
	case flagFind:
		return parseFindClients(args)
	default:
		return nil, unknownFlag(wordClient)
	}
}

func parseAddClient(args string) (command.Command, error) {
	m, err := tokenizeStrict(args, command.UsageAddClient,
		[]Prefix{PrefixName, PrefixProjectID},
		PrefixName, PrefixPhone, PrefixEmail, PrefixProjectID)
	if err != nil {
		return nil, err
	}

	var pc domain.PendingClient
	name, _ := m.Value(PrefixName)
	if pc.Name, err = domain.ParseName(name); err != nil {
		return nil, err
	}
	if pc.Phone, err = orDefault(m, PrefixPhone, domain.NoPhone, domain.ParsePhone); err != nil {
		return nil, err
	}
	if pc.Email, err = orDefault(m, PrefixEmail, domain.NoEmail, domain.ParseEmail); err != nil {
		return nil, err
	}
	pid, _ := m.Value(PrefixProjectID)
	if pc.ProjectID, err = domain.ParseID("Project", pid); err != nil {
		return nil, err
	}
	return command.AddClient{Client: pc}, nil
}

func parseEditClient(args string) (command.Command, error) {
	m, err := tokenizeStrict(args, command.UsageEditClient,
		[]Prefix{PrefixClientID},
		PrefixClientID, PrefixName, PrefixPhone, PrefixEmail)
	if err != nil {
		return nil, err
	}

	var c command.EditClient
	cid, _ := m.Value(PrefixClientID)
	if c.ID, err = domain.ParseID("Client", cid); err != nil {
		return nil, err
	}
	if !m.HasAny(PrefixName, PrefixPhone, PrefixEmail) {
		return nil, missingArguments(command.UsageEditClient)
	}
	if c.Name, err = optional(m, PrefixName, domain.ParseName); err != nil {
		return nil, err
	}
	if c.Phone, err = optional(m, PrefixPhone, domain.ParsePhone); err != nil {
		return nil, err
	}
	if c.Email, err = optional(m, PrefixEmail, domain.ParseEmail); err != nil {
		return nil, err
	}
	return c, nil
}

func parseFindClients(args string) (command.Command, error) {
	m := Tokenize(args, PrefixName, PrefixEmail, PrefixPhone)
	if !m.HasAny(PrefixName, PrefixEmail, PrefixPhone) || m.Preamble() != "" {
		return nil, invalidFormat(command.UsageFindClients)
	}

	var (
		c   command.FindClients
		err error
	)
	if c.Names, err = keywords(m, PrefixName, command.UsageFindClients); err != nil {
		return nil, err
	}
	if c.Emails, err = keywords(m, PrefixEmail, command.UsageFindClients); err != nil {
		return nil, err
	}
	if c.Phones, err = keywords(m, PrefixPhone, command.UsageFindClients); err != nil {
		return nil, err
	}
	return c, nil
}
